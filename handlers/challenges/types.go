package challenges

import "time"

// Constants for error messages
const (
	ErrChallengeNotFound     = "Challenge not found"
	ErrChallengeHasNoFile    = "Challenge has no attachment"
	ErrInvalidChallengeID    = "Invalid challenge ID"
	ErrInvalidRequest        = "Invalid request data"
	ErrFailedFetchChallenges = "Failed to fetch challenges"
	ErrIncorrectFlag         = "Incorrect flag"
	ErrAlreadySolved         = "Challenge already solved"
	ErrSubmissionFailed      = "Failed to process submission"
)

// SubmitFlagRequest model for flag submissions
type SubmitFlagRequest struct {
	Flag string `json:"flag" binding:"required"`
}

// SubmitFlagResponse model for an accepted flag
type SubmitFlagResponse struct {
	Correct bool `json:"correct"`
	Points  int  `json:"points"`
	Score   int  `json:"score"`
}

// ChallengeResponse model for challenge listings, including whether the
// requesting user already solved it
type ChallengeResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	Points      int       `json:"points"`
	HasFile     bool      `json:"has_file"`
	FileType    string    `json:"file_type,omitempty"`
	SolveCount  int       `json:"solve_count"`
	IsSolved    bool      `json:"is_solved"`
	CreatedAt   time.Time `json:"created_at"`
}
