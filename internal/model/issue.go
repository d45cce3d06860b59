package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueCategory classifies the kind of civic problem being reported.
type IssueCategory string

const (
	CategoryInfrastructure IssueCategory = "infrastructure"
	CategorySanitation     IssueCategory = "sanitation"
	CategorySafety         IssueCategory = "safety"
	CategoryEnvironment    IssueCategory = "environment"
	CategoryUtilities      IssueCategory = "utilities"
	CategoryTransportation IssueCategory = "transportation"
	CategoryOther          IssueCategory = "other"
)

// IssueStatus represents where an issue sits in its lifecycle. All
// transitions between states are permitted, including reopening.
type IssueStatus string

const (
	StatusOpen       IssueStatus = "open"
	StatusInProgress IssueStatus = "in_progress"
	StatusResolved   IssueStatus = "resolved"
	StatusClosed     IssueStatus = "closed"
)

// IssuePriority represents the urgency assigned to an issue.
type IssuePriority string

const (
	PriorityLow    IssuePriority = "low"
	PriorityMedium IssuePriority = "medium"
	PriorityHigh   IssuePriority = "high"
	PriorityUrgent IssuePriority = "urgent"
)

// Issue is a citizen-reported civic problem tracked through a status
// lifecycle. UserName is a snapshot of the reporter's display name at
// creation time; it is never re-resolved against the user record.
type Issue struct {
	ID          uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      string        `json:"user_id" gorm:"size:36;not null;index"`
	UserName    string        `json:"user_name" gorm:"size:255;not null"`
	Title       string        `json:"title" gorm:"size:255;not null"`
	Description string        `json:"description" gorm:"type:text;not null"`
	Category    IssueCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	Location    string        `json:"location" gorm:"size:255;not null"`
	Status      IssueStatus   `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	Priority    IssuePriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium';index"`
	PhotoURLs   []string      `json:"photo_urls" gorm:"serializer:json"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
