package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a message attached to an issue. Comments are immutable and
// never deleted. IsOfficial records whether the author held the admin role
// at the time of posting.
type Comment struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	IssueID    string    `json:"issue_id" gorm:"size:36;not null;index"`
	UserID     string    `json:"user_id" gorm:"size:36;not null"`
	UserName   string    `json:"user_name" gorm:"size:255;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	IsOfficial bool      `json:"is_official" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
