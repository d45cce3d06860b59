package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"civicpulse/internal/errors"
	"civicpulse/internal/model"
)

func TestNotificationService_List(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	expected := []model.Notification{
		{Message: "newest"},
		{Message: "older"},
	}
	mockRepo.On("ListByUser", mock.Anything, "user-1").Return(expected, nil)

	service := NewNotificationService(mockRepo)

	notifications, err := service.List(context.Background(), citizenIdentity())
	assert.NoError(t, err)
	assert.Equal(t, expected, notifications)
	mockRepo.AssertExpectations(t)
}

func TestNotificationService_MarkRead(t *testing.T) {
	notificationID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockNotificationRepository)
		expectedError error
	}{
		{
			name: "unread notification is flagged",
			setupMock: func(m *MockNotificationRepository) {
				m.On("FindForUser", mock.Anything, notificationID.String(), "user-1").Return(&model.Notification{
					ID:     notificationID,
					UserID: "user-1",
					Read:   false,
				}, nil)
				m.On("MarkRead", mock.Anything, notificationID.String(), "user-1").Return(int64(1), nil)
			},
		},
		{
			name: "already-read notification is returned without another write",
			setupMock: func(m *MockNotificationRepository) {
				m.On("FindForUser", mock.Anything, notificationID.String(), "user-1").Return(&model.Notification{
					ID:     notificationID,
					UserID: "user-1",
					Read:   true,
				}, nil)
			},
		},
		{
			name: "another user's notification reads as not found",
			setupMock: func(m *MockNotificationRepository) {
				m.On("FindForUser", mock.Anything, notificationID.String(), "user-1").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrNotificationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockNotificationRepository)
			tt.setupMock(mockRepo)

			service := NewNotificationService(mockRepo)

			notification, err := service.MarkRead(context.Background(), citizenIdentity(), notificationID.String())

			if tt.expectedError != nil {
				assert.Nil(t, notification)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, notification)
				assert.True(t, notification.Read)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	// First sweep matches three rows, the second none.
	mockRepo.On("MarkAllRead", mock.Anything, "user-1").Return(int64(3), nil).Once()
	mockRepo.On("MarkAllRead", mock.Anything, "user-1").Return(int64(0), nil).Once()

	service := NewNotificationService(mockRepo)

	count, err := service.MarkAllRead(context.Background(), citizenIdentity())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = service.MarkAllRead(context.Background(), citizenIdentity())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
	mockRepo.AssertExpectations(t)
}
