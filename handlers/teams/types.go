package teams

// Constants for error messages
const (
	ErrTeamNotFound     = "Team not found"
	ErrInvalidTeamID    = "Invalid team ID"
	ErrInvalidRequest   = "Invalid request data"
	ErrTeamNameTaken    = "Team name already taken"
	ErrAlreadyInTeam    = "You already belong to a team"
	ErrTeamFull         = "Team is full"
	ErrFailedFetchTeams = "Failed to fetch teams"
	ErrFailedCreateTeam = "Failed to create team"
	ErrFailedJoinTeam   = "Failed to join team"
)

// CreateTeamRequest model for team creation
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,min=3,max=50"`
}

// TeamMember is the member projection embedded in team responses
type TeamMember struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// TeamResponse model for team listings
type TeamResponse struct {
	ID      uint         `json:"id"`
	Name    string       `json:"name"`
	Score   int          `json:"score"`
	Members []TeamMember `json:"members"`
}
