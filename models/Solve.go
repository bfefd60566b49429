package models

import "time"

// Solve is the immutable fact that a user completed a challenge. The composite
// unique index is what guarantees at most one solve per (user, challenge) pair,
// even when identical submissions race.
type Solve struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `gorm:"not null;uniqueIndex:idx_solves_user_challenge" json:"user_id"`
	ChallengeID uint       `gorm:"not null;uniqueIndex:idx_solves_user_challenge" json:"challenge_id"`
	User        *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Challenge   *Challenge `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE" json:"challenge,omitempty"`
	SolvedAt    time.Time  `gorm:"autoCreateTime" json:"solved_at"`
}
