package models

import "time"

// User represents a registered player. Score is mutated only by the submission
// engine; credentials are handled by the auth handlers.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	TeamID    *uint     `gorm:"index" json:"team_id,omitempty"`
	Team      *Team     `gorm:"foreignKey:TeamID" json:"-"`
	Solves    []Solve   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
