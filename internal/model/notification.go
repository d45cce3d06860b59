package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationType tells the client which event produced a notification.
type NotificationType string

const (
	NotificationStatusChange NotificationType = "status_change"
	NotificationComment      NotificationType = "comment"
	NotificationAssignment   NotificationType = "assignment"
)

// Notification is a one-way, read-tracked message produced as a side effect
// of comment and status-change events. The message is pre-rendered at
// creation time; delivery is client-initiated polling.
type Notification struct {
	ID        uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    string           `json:"user_id" gorm:"size:36;not null;index"`
	IssueID   string           `json:"issue_id" gorm:"size:36;not null"`
	Type      NotificationType `json:"type" gorm:"type:varchar(20);not null"`
	Message   string           `json:"message" gorm:"size:512;not null"`
	Read      bool             `json:"read" gorm:"default:false"`
	CreatedAt time.Time        `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
