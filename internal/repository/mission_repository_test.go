package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newMockMissionRepo(t *testing.T) (*MissionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewMissionRepository(sqlx.NewDb(db, "sqlmock")), mock
}

// ============================================================================
// CASCADE DELETE
// ============================================================================

func TestDeleteCascade_CommitsWholeCascade(t *testing.T) {
	repo, mock := newMockMissionRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM telemetry WHERE mission_id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM waypoints WHERE mission_id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM missions WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.DeleteCascade(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascade_RollsBackWhenMissionMissing(t *testing.T) {
	repo, mock := newMockMissionRepo(t)
	id := uuid.New()

	// Dependent deletes run first; a missing mission must undo them too, never
	// leaving waypoints or telemetry half-removed.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM telemetry WHERE mission_id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM waypoints WHERE mission_id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM missions WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteCascade(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascade_RollsBackOnDependentDeleteFailure(t *testing.T) {
	repo, mock := newMockMissionRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM telemetry WHERE mission_id = $1`)).
		WithArgs(id).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.DeleteCascade(context.Background(), id)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
