package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/internal/repository"
	"github.com/limbo/challenger/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "username", "name", "avatar", "has_ongoing_challenge", "profile_visit_count", "created_at", "updated_at"}

func testUser() entity.User {
	avatar := "https://cdn.test/a.png"
	return entity.User{
		ID:                uuid.New(),
		Email:             "alice@example.com",
		Username:          "alice",
		Name:              "Alice",
		Avatar:            &avatar,
		ProfileVisitCount: 3,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
}

func userRow(u entity.User) *pgxmock.Rows {
	return pgxmock.NewRows(userCols).AddRow(u.ID, u.Email, u.Username, u.Name, u.Avatar,
		u.HasOngoingChallenge, u.ProfileVisitCount, u.CreatedAt, u.UpdatedAt)
}

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	user := testUser()
	query := regexp.QuoteMeta(`INSERT INTO users (id, email, username, name, avatar) VALUES ($1, $2, $3, $4, $5);`)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successfully created",
			Error: nil,
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(user.ID, user.Email, user.Username, user.Name, user.Avatar).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "username taken",
			Error: errorvalues.ErrUsernameTaken,
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(user.ID, user.Email, user.Username, user.Name, user.Avatar).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
			},
		},
		{
			Desc:  "email taken",
			Error: errorvalues.ErrEmailTaken,
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(user.ID, user.Email, user.Username, user.Name, user.Avatar).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
		},
		{
			Desc:  "id taken",
			Error: errorvalues.ErrUserExists,
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(user.ID, user.Email, user.Username, user.Name, user.Avatar).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"})
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Create(ctx, &user)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.ID, user.Email, user.Username, user.Name, user.Avatar).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.EqualError(t, err, "creating user db error: db error")
	})
	t.Run("nil user", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, nil))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	user := testUser()
	byID := regexp.QuoteMeta(`SELECT id, email, username, name, avatar, has_ongoing_challenge, profile_visit_count, created_at, updated_at FROM users WHERE id = $1;`)

	t.Run("found by id", func(t *testing.T) {
		conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnRows(userRow(user))
		res, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *res)
	})
	t.Run("not found by id", func(t *testing.T) {
		conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUsernameExists(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1);`)
	conn.ExpectQuery(query).WithArgs("alice").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	exists, err := repo.UsernameExists(context.Background(), "alice")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUpdateProfile(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	ctx := context.Background()
	user := testUser()
	query := regexp.QuoteMeta(`UPDATE users SET email = $1, name = $2, avatar = $3, updated_at = NOW() WHERE id = $4 RETURNING`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Email, user.Name, user.Avatar, user.ID).WillReturnRows(userRow(user))
		res, err := repo.UpdateProfile(ctx, &user)
		assert.NoError(t, err)
		assert.Equal(t, user.Username, res.Username)
	})
	t.Run("unknown user", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Email, user.Name, user.Avatar, user.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.UpdateProfile(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("email taken", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Email, user.Name, user.Avatar, user.ID).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		_, err := repo.UpdateProfile(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrEmailTaken)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
