package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfile stores per-user learning preferences used to personalize
// curriculum generation and agent replies. At most one row per user.
type UserProfile struct {
	ID            uint                       `json:"id" gorm:"primarykey"`
	UserID        uint                       `json:"user_id" gorm:"uniqueIndex;not null"`
	LearningStyle string                     `json:"learning_style" gorm:"default:''"`
	Pace          string                     `json:"pace" gorm:"default:''"`
	Interests     datatypes.JSONSlice[string] `json:"interests"`
	Goals         datatypes.JSONSlice[string] `json:"goals"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}
