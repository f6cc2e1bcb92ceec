package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/internal/repository/mocks"
	"github.com/limbo/challenger/internal/service"
	"github.com/limbo/challenger/pkg/entity"
)

func newUsersService(t *testing.T) (*service.UsersService, *mocks.MockUsersRepositoryI, *mocks.MockVisitsRepositoryI, *spyCache) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepositoryI(ctrl)
	visits := mocks.NewMockVisitsRepositoryI(ctrl)
	creators := newSpyCache(clockwork.NewFakeClock())
	return service.NewUsersService(users, visits, creators, nil), users, visits, creators
}

func ptr[T any](v T) *T {
	return &v
}

func TestUpsertUserCreates(t *testing.T) {
	id := uuid.MustParse("7f1c2a3b-1111-4222-8333-944445555666")
	testCases := []struct {
		Desc         string
		Req          service.UpsertUserRequest
		Username     string
		Name         string
		Taken        bool
	}{
		{
			Desc:     "requested username is cleaned",
			Req:      service.UpsertUserRequest{ID: id, Email: "alice@example.com", Username: ptr("Alice Smith!"), Name: ptr("  Alice  ")},
			Username: "alicesmith",
			Name:     "Alice",
		},
		{
			Desc:     "too short username falls back to email",
			Req:      service.UpsertUserRequest{ID: id, Email: "Bob.Builder@example.com", Username: ptr("b!")},
			Username: "bobbuilder",
			Name:     "Bob.Builder",
		},
		{
			Desc:     "short email falls back to id",
			Req:      service.UpsertUserRequest{ID: id, Email: "x@example.com"},
			Username: "user_7f1c2a3b",
			Name:     "x",
		},
		{
			Desc:     "underscores survive",
			Req:      service.UpsertUserRequest{ID: id, Email: "c@example.com", Username: ptr("code_runner")},
			Username: "code_runner",
			Name:     "c",
		},
		{
			Desc:     "taken username gets a suffix",
			Req:      service.UpsertUserRequest{ID: id, Email: "alice@example.com", Username: ptr("alice")},
			Username: "alice_",
			Name:     "alice",
			Taken:    true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			us, users, _, creators := newUsersService(t)
			var created entity.User
			users.EXPECT().FindByID(gomock.Any(), id).Return(nil, errorvalues.ErrUserNotFound)
			users.EXPECT().UsernameExists(gomock.Any(), gomock.Any()).Return(tc.Taken, nil)
			users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) error {
				created = *u
				return nil
			})
			users.EXPECT().FindByID(gomock.Any(), id).DoAndReturn(func(context.Context, uuid.UUID) (*entity.User, error) {
				u := created
				return &u, nil
			})
			req := tc.Req
			user, err := us.UpsertUser(context.Background(), id, &req)
			require.NoError(t, err)
			assert.Equal(t, tc.Name, user.Name)
			if tc.Taken {
				assert.True(t, strings.HasPrefix(user.Username, tc.Username))
				assert.Len(t, user.Username, len(tc.Username)+4)
			} else {
				assert.Equal(t, tc.Username, user.Username)
			}
			assert.Equal(t, []uuid.UUID{id}, creators.Invalidated())
		})
	}
}

func TestUpsertUser(t *testing.T) {
	id := uuid.New()
	existing := &entity.User{ID: id, Email: "old@example.com", Username: "alice", Name: "Old", CreatedAt: time.Now()}
	req := func() *service.UpsertUserRequest {
		return &service.UpsertUserRequest{ID: id, Email: "new@example.com", Username: ptr("renamed"), Name: ptr("Alice"), Avatar: ptr("https://cdn.test/a.png")}
	}
	testCases := []struct {
		Desc         string
		Subject      uuid.UUID
		Req          *service.UpsertUserRequest
		Error        error
		MockPrepFunc func(users *mocks.MockUsersRepositoryI)
	}{
		{
			Desc:    "existing user keeps username",
			Subject: id,
			Req:     req(),
			MockPrepFunc: func(users *mocks.MockUsersRepositoryI) {
				users.EXPECT().FindByID(gomock.Any(), id).Return(existing, nil)
				users.EXPECT().UpdateProfile(gomock.Any(), &entity.User{
					ID: id, Email: "new@example.com", Username: "alice", Name: "Alice", Avatar: ptr("https://cdn.test/a.png"),
				}).Return(&entity.User{ID: id, Email: "new@example.com", Username: "alice", Name: "Alice"}, nil)
			},
		},
		{
			Desc:         "token subject mismatch",
			Subject:      uuid.New(),
			Req:          req(),
			Error:        errorvalues.ErrUnauthorized,
			MockPrepFunc: func(*mocks.MockUsersRepositoryI) {},
		},
		{
			Desc:    "invalid email",
			Subject: id,
			Req: func() *service.UpsertUserRequest {
				r := req()
				r.Email = "not-an-email"
				return r
			}(),
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func(*mocks.MockUsersRepositoryI) {},
		},
		{
			Desc:    "email owned by someone else",
			Subject: id,
			Req:     req(),
			Error:   errorvalues.ErrConflict,
			MockPrepFunc: func(users *mocks.MockUsersRepositoryI) {
				users.EXPECT().FindByID(gomock.Any(), id).Return(existing, nil)
				users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrEmailTaken)
			},
		},
		{
			Desc:    "storage failure",
			Subject: id,
			Req:     req(),
			Error:   errorvalues.ErrInfrastructure,
			MockPrepFunc: func(users *mocks.MockUsersRepositoryI) {
				users.EXPECT().FindByID(gomock.Any(), id).Return(nil, errors.New("db error"))
			},
		},
		{
			Desc:    "concurrent first sign-in falls back to update",
			Subject: id,
			Req:     req(),
			MockPrepFunc: func(users *mocks.MockUsersRepositoryI) {
				users.EXPECT().FindByID(gomock.Any(), id).Return(nil, errorvalues.ErrUserNotFound)
				users.EXPECT().UsernameExists(gomock.Any(), "renamed").Return(false, nil)
				users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
				users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(&entity.User{ID: id, Username: "renamed"}, nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			us, users, _, _ := newUsersService(t)
			tc.MockPrepFunc(users)
			user, err := us.UpsertUser(context.Background(), tc.Subject, tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, user.ID)
		})
	}
}

func TestTrackVisit(t *testing.T) {
	ownerID := uuid.New()
	testCases := []struct {
		Desc         string
		VisitorKey   string
		Success      bool
		Invalidated  []uuid.UUID
		MockPrepFunc func(visits *mocks.MockVisitsRepositoryI)
	}{
		{
			Desc:        "first visit invalidates profile",
			VisitorKey:  "203.0.113.7",
			Success:     true,
			Invalidated: []uuid.UUID{ownerID},
			MockPrepFunc: func(visits *mocks.MockVisitsRepositoryI) {
				visits.EXPECT().Track(gomock.Any(), ownerID, "203.0.113.7").Return(true, nil)
			},
		},
		{
			Desc:       "repeated visit is not counted",
			VisitorKey: "203.0.113.7",
			Success:    true,
			MockPrepFunc: func(visits *mocks.MockVisitsRepositoryI) {
				visits.EXPECT().Track(gomock.Any(), ownerID, "203.0.113.7").Return(false, nil)
			},
		},
		{
			Desc:       "failure is swallowed",
			VisitorKey: "203.0.113.7",
			Success:    false,
			MockPrepFunc: func(visits *mocks.MockVisitsRepositoryI) {
				visits.EXPECT().Track(gomock.Any(), ownerID, "203.0.113.7").Return(false, errors.New("db error"))
			},
		},
		{
			Desc:         "empty visitor key",
			VisitorKey:   "  ",
			Success:      false,
			MockPrepFunc: func(*mocks.MockVisitsRepositoryI) {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			us, _, visits, creators := newUsersService(t)
			tc.MockPrepFunc(visits)
			assert.Equal(t, tc.Success, us.TrackVisit(context.Background(), ownerID, tc.VisitorKey))
			assert.Equal(t, tc.Invalidated, creators.Invalidated())
		})
	}
}

func TestGetUserByID(t *testing.T) {
	us, users, _, _ := newUsersService(t)
	id := uuid.New()
	users.EXPECT().FindByID(gomock.Any(), id).Return(&entity.User{ID: id}, nil)
	user, err := us.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	users.EXPECT().FindByID(gomock.Any(), id).Return(nil, errorvalues.ErrUserNotFound)
	_, err = us.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, errorvalues.ErrNotFound)
}
