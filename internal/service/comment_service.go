package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"civicpulse/internal/auth"
	"civicpulse/internal/errors"
	"civicpulse/internal/model"
	"civicpulse/internal/repository"
)

// AddCommentInput carries a validated comment submission. UserName is the
// same display-name override point as on issue creation.
type AddCommentInput struct {
	Content  string
	UserName string
}

// CommentService handles comment creation and the comment notification
// fan-out to the issue's reporter.
type CommentService interface {
	Add(ctx context.Context, identity auth.Identity, issueID string, input AddCommentInput) (*model.Comment, error)
	ListForIssue(ctx context.Context, issueID string) ([]model.Comment, error)
}

type commentService struct {
	commentRepo      repository.CommentRepository
	issueRepo        repository.IssueRepository
	notificationRepo repository.NotificationRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, issueRepo repository.IssueRepository, notificationRepo repository.NotificationRepository) CommentService {
	return &commentService{
		commentRepo:      commentRepo,
		issueRepo:        issueRepo,
		notificationRepo: notificationRepo,
	}
}

// Add attaches a comment to an existing issue. When the commenter is not
// the issue's reporter, the reporter gets a comment notification;
// commenting on one's own issue stays silent. The notification write is
// best-effort and never fails the comment.
func (s *commentService) Add(ctx context.Context, identity auth.Identity, issueID string, input AddCommentInput) (*model.Comment, error) {
	issue, err := s.issueRepo.FindByID(ctx, issueID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("find issue: %w", err)
	}

	userName := input.UserName
	if userName == "" {
		userName = identity.Email
	}

	comment := &model.Comment{
		IssueID:    issueID,
		UserID:     identity.ID,
		UserName:   userName,
		Content:    input.Content,
		IsOfficial: identity.IsAdmin(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if issue.UserID != identity.ID {
		notification := &model.Notification{
			UserID:  issue.UserID,
			IssueID: issue.ID.String(),
			Type:    model.NotificationComment,
			Message: fmt.Sprintf("%s commented on your issue \"%s\"", comment.UserName, issue.Title),
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			log.Printf("comment notification for issue %s lost: %v", issueID, err)
		}
	}

	return comment, nil
}

// ListForIssue returns an issue's comments in conversation order.
func (s *commentService) ListForIssue(ctx context.Context, issueID string) ([]model.Comment, error) {
	return s.commentRepo.ListByIssue(ctx, issueID)
}
