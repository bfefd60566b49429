package models

import "time"

// Challenge represents a security challenge users can solve by submitting its flag
type Challenge struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"type:varchar(50);not null" json:"category"`
	Difficulty  string    `gorm:"type:varchar(20);not null" json:"difficulty"`
	Points      int       `gorm:"not null" json:"points"`
	Flag        string    `gorm:"type:varchar(100);not null" json:"-"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	FilePath    string    `gorm:"type:varchar(200)" json:"-"`
	FileType    string    `gorm:"type:varchar(50)" json:"file_type,omitempty"`
	Solves      []Solve   `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
