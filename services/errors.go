package services

import "errors"

// Outcome taxonomy of the scoring and membership engine. Handlers translate
// these into HTTP status codes; anything not listed here is a storage failure
// and propagates wrapped.
var (
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrAlreadySolved      = errors.New("challenge already solved")
	ErrIncorrectFlag      = errors.New("incorrect flag")
	ErrAlreadyTeamed      = errors.New("user already belongs to a team")
	ErrTeamFull           = errors.New("team is full")
	ErrTeamNameTaken      = errors.New("team name already taken")
	ErrSubmissionCooldown = errors.New("too many wrong flags, submission cooldown active")
)
