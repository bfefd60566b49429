package models

import "time"

// Team groups up to five users under a shared score. Membership is modeled as
// an optional team reference on the user rather than a join table, since a
// user belongs to at most one team.
type Team struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	Members   []User    `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
