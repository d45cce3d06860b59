package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"civicpulse/internal/auth"
	"civicpulse/internal/errors"
	"civicpulse/internal/model"
)

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByIssue(ctx context.Context, issueID string) ([]model.Comment, error) {
	args := m.Called(ctx, issueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func TestCommentService_Add(t *testing.T) {
	issueID := uuid.New()
	storedIssue := func() *model.Issue {
		return &model.Issue{
			ID:     issueID,
			UserID: "reporter-1",
			Title:  "Water main leaking near bus stop",
		}
	}

	tests := []struct {
		name               string
		identity           auth.Identity
		input              AddCommentInput
		expectedUserName   string
		expectedIsOfficial bool
		expectNotification bool
	}{
		{
			name:               "other citizen comments and the reporter is notified",
			identity:           auth.Identity{ID: "user-2", Email: "bob@example.com", Role: model.RoleCitizen},
			input:              AddCommentInput{Content: "Same thing on my street."},
			expectedUserName:   "bob@example.com",
			expectNotification: true,
		},
		{
			name:             "reporter commenting on own issue stays silent",
			identity:         auth.Identity{ID: "reporter-1", Email: "alice@example.com", Role: model.RoleCitizen},
			input:            AddCommentInput{Content: "Any update on this?"},
			expectedUserName: "alice@example.com",
		},
		{
			name:               "admin comment is official and notifies",
			identity:           auth.AdminIdentity(),
			input:              AddCommentInput{Content: "Crew dispatched.", UserName: "City Works"},
			expectedUserName:   "City Works",
			expectedIsOfficial: true,
			expectNotification: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCommentRepo := new(MockCommentRepository)
			mockIssueRepo := new(MockIssueRepository)
			mockNotificationRepo := new(MockNotificationRepository)

			mockIssueRepo.On("FindByID", mock.Anything, issueID.String()).Return(storedIssue(), nil)
			mockCommentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)
			if tt.expectNotification {
				mockNotificationRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
					return n.UserID == "reporter-1" &&
						n.IssueID == issueID.String() &&
						n.Type == model.NotificationComment
				})).Return(nil).Once()
			}

			service := NewCommentService(mockCommentRepo, mockIssueRepo, mockNotificationRepo)

			comment, err := service.Add(context.Background(), tt.identity, issueID.String(), tt.input)

			assert.NoError(t, err)
			assert.Equal(t, issueID.String(), comment.IssueID)
			assert.Equal(t, tt.identity.ID, comment.UserID)
			assert.Equal(t, tt.expectedUserName, comment.UserName)
			assert.Equal(t, tt.input.Content, comment.Content)
			assert.Equal(t, tt.expectedIsOfficial, comment.IsOfficial)

			if !tt.expectNotification {
				mockNotificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			mockCommentRepo.AssertExpectations(t)
			mockNotificationRepo.AssertExpectations(t)
		})
	}
}

func TestCommentService_Add_IssueNotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockIssueRepo := new(MockIssueRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	mockIssueRepo.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewCommentService(mockCommentRepo, mockIssueRepo, mockNotificationRepo)

	comment, err := service.Add(context.Background(), citizenIdentity(), "missing", AddCommentInput{Content: "hello"})
	assert.Nil(t, comment)
	assert.Equal(t, errors.ErrIssueNotFound, err)
	mockCommentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentService_Add_NotificationFailureIsSwallowed(t *testing.T) {
	issueID := uuid.New()
	mockCommentRepo := new(MockCommentRepository)
	mockIssueRepo := new(MockIssueRepository)
	mockNotificationRepo := new(MockNotificationRepository)

	mockIssueRepo.On("FindByID", mock.Anything, issueID.String()).Return(&model.Issue{
		ID:     issueID,
		UserID: "reporter-1",
		Title:  "Deep pothole on Maple Avenue",
	}, nil)
	mockCommentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)
	mockNotificationRepo.On("Create", mock.Anything, mock.Anything).Return(stderrors.New("write timeout"))

	service := NewCommentService(mockCommentRepo, mockIssueRepo, mockNotificationRepo)

	comment, err := service.Add(context.Background(), auth.Identity{ID: "user-2", Email: "bob@example.com", Role: model.RoleCitizen}, issueID.String(), AddCommentInput{Content: "Careful out there."})
	assert.NoError(t, err)
	assert.NotNil(t, comment)
	mockNotificationRepo.AssertExpectations(t)
}

func TestCommentService_ListForIssue(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockIssueRepo := new(MockIssueRepository)
	mockNotificationRepo := new(MockNotificationRepository)

	expected := []model.Comment{
		{Content: "first"},
		{Content: "second"},
	}
	mockCommentRepo.On("ListByIssue", mock.Anything, "issue-1").Return(expected, nil)

	service := NewCommentService(mockCommentRepo, mockIssueRepo, mockNotificationRepo)

	comments, err := service.ListForIssue(context.Background(), "issue-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, comments)
	mockCommentRepo.AssertExpectations(t)
}
