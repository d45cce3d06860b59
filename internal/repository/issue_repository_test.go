package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"civicpulse/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock
}

func TestIssueRepository_List_FilterComposition(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewIssueRepository(gormDB)

	status := model.StatusOpen
	filter := IssueFilter{
		Status: &status,
		Search: "Streetlight",
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `issues` WHERE status = ? AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?) ORDER BY created_at DESC",
	)).
		WithArgs("open", "%streetlight%", "%streetlight%", "%streetlight%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "status"}).
			AddRow("4a3a1f2e-0000-0000-0000-000000000001", "Broken streetlight on Elm St", "open"))

	issues, err := repo.List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Len(t, issues, 1)
	assert.Equal(t, "Broken streetlight on Elm St", issues[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueRepository_List_NoFilter(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewIssueRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `issues` ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	issues, err := repo.List(context.Background(), IssueFilter{})
	assert.NoError(t, err)
	assert.Empty(t, issues)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueRepository_UpdateStatus(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewIssueRepository(gormDB)

	t.Run("without resolved_at", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE `issues` SET `status`=?,`updated_at`=? WHERE id = ?",
		)).
			WithArgs("in_progress", sqlmock.AnyArg(), "issue-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), "issue-1", model.StatusInProgress, nil)
		assert.NoError(t, err)
	})

	t.Run("with resolved_at stamped in the same statement", func(t *testing.T) {
		now := time.Now()
		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE `issues` SET `resolved_at`=?,`status`=?,`updated_at`=? WHERE id = ?",
		)).
			WithArgs(sqlmock.AnyArg(), "resolved", sqlmock.AnyArg(), "issue-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), "issue-1", model.StatusResolved, &now)
		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueRepository_Delete_ReportsRowsAffected(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewIssueRepository(gormDB)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `issues` WHERE id = ?")).
		WithArgs("issue-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.Delete(context.Background(), "issue-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
