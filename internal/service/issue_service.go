package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"civicpulse/internal/auth"
	"civicpulse/internal/cache"
	"civicpulse/internal/errors"
	"civicpulse/internal/model"
	"civicpulse/internal/repository"
)

const issueCacheTTL = 5 * time.Minute

// CreateIssueInput carries a validated issue submission. UserName is an
// optional display-name override; when empty the reporter's email is
// snapshotted instead.
type CreateIssueInput struct {
	Title       string
	Description string
	Category    model.IssueCategory
	Location    string
	Priority    model.IssuePriority
	PhotoURLs   []string
	UserName    string
}

// IssueService handles the issue lifecycle and its notification side
// effects. Notification writes are best-effort: a failure is logged and the
// primary mutation stands.
type IssueService interface {
	Create(ctx context.Context, identity auth.Identity, input CreateIssueInput) (*model.Issue, error)
	List(ctx context.Context, filter repository.IssueFilter) ([]model.Issue, error)
	Get(ctx context.Context, id string) (*model.Issue, error)
	UpdateStatus(ctx context.Context, id string, status model.IssueStatus) (*model.Issue, error)
	Delete(ctx context.Context, id string) error
}

type issueService struct {
	issueRepo        repository.IssueRepository
	notificationRepo repository.NotificationRepository
	cache            *cache.Client
}

// NewIssueService creates a new issue service.
func NewIssueService(issueRepo repository.IssueRepository, notificationRepo repository.NotificationRepository, cache *cache.Client) IssueService {
	return &issueService{
		issueRepo:        issueRepo,
		notificationRepo: notificationRepo,
		cache:            cache,
	}
}

func (s *issueService) cacheKey(id string) string {
	return fmt.Sprintf("issue:%s", id)
}

// Create persists a new open issue for the given identity. No notification
// is emitted on creation.
func (s *issueService) Create(ctx context.Context, identity auth.Identity, input CreateIssueInput) (*model.Issue, error) {
	userName := input.UserName
	if userName == "" {
		userName = identity.Email
	}
	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	photoURLs := input.PhotoURLs
	if photoURLs == nil {
		photoURLs = []string{}
	}

	issue := &model.Issue{
		UserID:      identity.ID,
		UserName:    userName,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Location:    input.Location,
		Status:      model.StatusOpen,
		Priority:    priority,
		PhotoURLs:   photoURLs,
	}
	if err := s.issueRepo.Create(ctx, issue); err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}
	return issue, nil
}

// List returns all issues matching the filter, newest first.
func (s *issueService) List(ctx context.Context, filter repository.IssueFilter) ([]model.Issue, error) {
	return s.issueRepo.List(ctx, filter)
}

// Get retrieves an issue by ID with caching.
func (s *issueService) Get(ctx context.Context, id string) (*model.Issue, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Issue
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	issue, err := s.issueRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("find issue: %w", err)
	}

	if payload, err := json.Marshal(issue); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, issueCacheTTL)
	}
	return issue, nil
}

// UpdateStatus moves an issue to the given status. resolved_at is stamped
// the first time the issue enters resolved and never re-stamped or cleared.
// A status_change notification is always sent to the reporter, even when
// the status did not actually change and even when the acting admin is the
// reporter.
func (s *issueService) UpdateStatus(ctx context.Context, id string, status model.IssueStatus) (*model.Issue, error) {
	issue, err := s.issueRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("find issue: %w", err)
	}

	oldStatus := issue.Status
	now := time.Now()

	var resolvedAt *time.Time
	if status == model.StatusResolved && issue.ResolvedAt == nil {
		resolvedAt = &now
	}

	if err := s.issueRepo.UpdateStatus(ctx, id, status, resolvedAt); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	issue.Status = status
	issue.UpdatedAt = now
	if resolvedAt != nil {
		issue.ResolvedAt = resolvedAt
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))

	notification := &model.Notification{
		UserID:  issue.UserID,
		IssueID: issue.ID.String(),
		Type:    model.NotificationStatusChange,
		Message: fmt.Sprintf("Issue \"%s\" status changed from %s to %s", issue.Title, oldStatus, status),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("status notification for issue %s lost: %v", id, err)
	}

	return issue, nil
}

// Delete removes an issue. Its comments and notifications are intentionally
// left behind; relations are by stored id only, with no cascade.
func (s *issueService) Delete(ctx context.Context, id string) error {
	rows, err := s.issueRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete issue: %w", err)
	}
	if rows == 0 {
		return errors.ErrIssueNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
