package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackVisit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewVisitsRepo(mock)
	ownerID := uuid.New()
	visitor := "203.0.113.7"
	insert := regexp.QuoteMeta(`INSERT INTO profile_visits (user_id, visitor_key) VALUES ($1, $2) ON CONFLICT (user_id, visitor_key) DO NOTHING;`)
	increment := regexp.QuoteMeta(`UPDATE users SET profile_visit_count = profile_visit_count + 1 WHERE id = $1;`)
	testCases := []struct {
		Desc         string
		Counted      bool
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:    "first visit is counted",
			Counted: true,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(insert).WithArgs(ownerID, visitor).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(increment).WithArgs(ownerID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
		},
		{
			Desc:    "repeated visit is not counted",
			Counted: false,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(insert).WithArgs(ownerID, visitor).WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectCommit()
			},
		},
		{
			Desc:  "unknown owner",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(insert).WithArgs(ownerID, visitor).WillReturnError(&pgconn.PgError{Code: "23503"})
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "db error rolls back",
			Error: errors.New("incrementing visit count error: db error"),
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(insert).WithArgs(ownerID, visitor).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(increment).WithArgs(ownerID).WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			counted, err := repo.Track(ctx, ownerID, visitor)
			if tc.Error != nil {
				if errors.Is(tc.Error, errorvalues.ErrNotFound) {
					assert.ErrorIs(t, err, tc.Error)
				} else {
					assert.EqualError(t, err, tc.Error.Error())
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Counted, counted)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
