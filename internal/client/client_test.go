package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/challenger/internal/api"
	"github.com/limbo/challenger/internal/client"
	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/internal/service"
	"github.com/limbo/challenger/internal/service/mocks"
	"github.com/limbo/challenger/pkg/entity"
	jwtservice "github.com/limbo/challenger/pkg/jwt_service"
)

var userID = uuid.New()

func setup(t *testing.T, withToken bool) (*client.Client, *mocks.MockChallengesServiceI, *mocks.MockUsersServiceI) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockChallengesServiceI(ctrl)
	uService := mocks.NewMockUsersServiceI(ctrl)
	jwtServ := jwtservice.New("secret")
	serv := api.New(&api.ServicesList{
		ChallengesService: cService,
		UsersService:      uService,
		JwtService:        jwtServ,
	}, api.Options{})
	ts := httptest.NewServer(serv.Handler())
	t.Cleanup(ts.Close)

	opts := []client.Option{client.WithHTTPClient(ts.Client())}
	if withToken {
		token, err := jwtServ.GenerateToken(&entity.User{ID: userID, Username: "alice"})
		require.NoError(t, err)
		opts = append(opts, client.WithToken(token))
	}
	return client.New(ts.URL+"/", opts...), cService, uService
}

func TestCompleteTask(t *testing.T) {
	c, cService, _ := setup(t, true)
	taskID := uuid.New()

	t.Run("success", func(t *testing.T) {
		cService.EXPECT().MarkTaskComplete(gomock.Any(), taskID, userID).Return(&entity.CompletionResult{
			Success:      true,
			AllCompleted: true,
			Task:         entity.CompletedTask{ID: taskID, IsCompleted: true},
			Challenge:    entity.ChallengeProgress{Status: entity.StatusCompleted, CompletedTasksCount: 2, TotalTasksCount: 2},
		}, nil)
		res, err := c.CompleteTask(context.Background(), taskID)
		require.NoError(t, err)
		assert.True(t, res.AllCompleted)
		assert.Equal(t, entity.StatusCompleted, res.Challenge.Status)
	})

	t.Run("conflict maps to category", func(t *testing.T) {
		cService.EXPECT().MarkTaskComplete(gomock.Any(), taskID, userID).Return(nil, errorvalues.ErrTaskAlreadyCompleted)
		_, err := c.CompleteTask(context.Background(), taskID)
		require.Error(t, err)
		assert.ErrorIs(t, err, errorvalues.ErrConflict)
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
		assert.Contains(t, apiErr.Message, "already completed")
	})
}

func TestUnauthenticated(t *testing.T) {
	c, _, _ := setup(t, false)
	_, err := c.CompleteTask(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrUnauthorized)
}

func TestCreateChallenge(t *testing.T) {
	c, cService, uService := setup(t, true)
	req := &service.CreateChallengeRequest{
		Title:        "Run",
		Description:  "every morning",
		Duration:     2,
		DurationUnit: entity.UnitWeeks,
		Tasks:        []service.TaskRequest{{Title: "5k"}},
	}
	uService.EXPECT().GetByID(gomock.Any(), userID).Return(&entity.User{ID: userID, Username: "alice"}, nil)
	cService.EXPECT().CreateChallenge(gomock.Any(), "alice", req).
		Return(&entity.Challenge{ID: uuid.New(), Title: "Run", Status: entity.StatusOngoing}, nil)

	challenge, err := c.CreateChallenge(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Run", challenge.Title)
	assert.Equal(t, entity.StatusOngoing, challenge.Status)
}

func TestPublicReads(t *testing.T) {
	c, cService, uService := setup(t, false)
	ctx := context.Background()

	cService.EXPECT().GetCreatorDetails(gomock.Any(), userID).
		Return(&entity.CreatorDetails{ID: userID, Username: "alice", ProfileVisitCount: 4}, nil)
	details, err := c.GetCreatorDetails(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 4, details.ProfileVisitCount)

	uService.EXPECT().TrackVisit(gomock.Any(), userID, gomock.Any()).Return(true)
	counted, err := c.TrackVisit(ctx, userID)
	require.NoError(t, err)
	assert.True(t, counted)

	cService.EXPECT().GetTopChallenges(gomock.Any()).Return([]entity.Challenge{{Title: "a"}, {Title: "b"}}, nil)
	top, err := c.GetTopChallenges(ctx)
	require.NoError(t, err)
	assert.Len(t, top, 2)

	cService.EXPECT().GetOngoingChallenges(gomock.Any()).Return([]entity.Challenge{}, nil)
	ongoing, err := c.GetOngoingChallenges(ctx)
	require.NoError(t, err)
	assert.Empty(t, ongoing)

	challengeID := uuid.New()
	cService.EXPECT().CheckAndExpire(gomock.Any(), challengeID).Return(&entity.ExpiryResult{Success: true})
	expiry, err := c.CheckChallengeStatus(ctx, challengeID)
	require.NoError(t, err)
	assert.True(t, expiry.Success)
	assert.False(t, expiry.StatusChanged)

	missing := uuid.New()
	cService.EXPECT().GetCreatorDetails(gomock.Any(), missing).Return(nil, errorvalues.ErrUserNotFound)
	_, err = c.GetCreatorDetails(ctx, missing)
	assert.ErrorIs(t, err, errorvalues.ErrNotFound)
}

func TestTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()
	c := client.New(url)
	_, err := c.GetTopChallenges(context.Background())
	assert.ErrorIs(t, err, errorvalues.ErrInfrastructure)
}
