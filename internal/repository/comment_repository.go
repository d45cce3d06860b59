package repository

import (
	"context"

	"gorm.io/gorm"

	"civicpulse/internal/model"
)

// CommentRepository defines comment persistence operations. Comments are
// append-only: there is no update or delete.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByIssue(ctx context.Context, issueID string) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByIssue returns the comments of an issue oldest first, so they read
// as a conversation thread.
func (r *commentRepository) ListByIssue(ctx context.Context, issueID string) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
