package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"civicpulse/internal/model"
)

// IssueFilter narrows an issue listing. Nil fields impose no constraint.
// Search matches title, description or location case-insensitively.
type IssueFilter struct {
	Category *model.IssueCategory
	Status   *model.IssueStatus
	Priority *model.IssuePriority
	Search   string
}

// IssueRepository defines issue persistence operations.
type IssueRepository interface {
	Create(ctx context.Context, issue *model.Issue) error
	FindByID(ctx context.Context, id string) (*model.Issue, error)
	List(ctx context.Context, filter IssueFilter) ([]model.Issue, error)
	UpdateStatus(ctx context.Context, id string, status model.IssueStatus, resolvedAt *time.Time) error
	Delete(ctx context.Context, id string) (int64, error)
}

type issueRepository struct {
	db *gorm.DB
}

// NewIssueRepository creates a new issue repository.
func NewIssueRepository(db *gorm.DB) IssueRepository {
	return &issueRepository{db: db}
}

// Create creates a new issue.
func (r *issueRepository) Create(ctx context.Context, issue *model.Issue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

// FindByID finds an issue by ID.
func (r *issueRepository) FindByID(ctx context.Context, id string) (*model.Issue, error) {
	var issue model.Issue
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&issue).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

// List returns all issues matching the filter, newest first. Exact-match
// filters are conjunctive; the search term is disjunctive across title,
// description and location.
func (r *issueRepository) List(ctx context.Context, filter IssueFilter) ([]model.Issue, error) {
	query := r.db.WithContext(ctx).Model(&model.Issue{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var issues []model.Issue
	if err := query.Order("created_at DESC").Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

// UpdateStatus sets the status of an issue in a single row update. When
// resolvedAt is non-nil the resolved_at column is stamped in the same
// statement, so the write stays atomic.
func (r *issueRepository) UpdateStatus(ctx context.Context, id string, status model.IssueStatus, resolvedAt *time.Time) error {
	fields := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if resolvedAt != nil {
		fields["resolved_at"] = *resolvedAt
	}
	return r.db.WithContext(ctx).Model(&model.Issue{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes an issue and reports how many rows were affected. Comments
// and notifications referencing the issue are left in place.
func (r *issueRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Issue{})
	return res.RowsAffected, res.Error
}
