package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/internal/metrics"
	"github.com/limbo/challenger/internal/repository"
	"github.com/limbo/challenger/pkg/entity"
)

const (
	CreatorChallengesLimit = 10
	TopChallengesLimit     = 20
	OngoingChallengesLimit = 50
	TopChallengesWindow    = 30 * 24 * time.Hour
	OngoingWindow          = 60 * 24 * time.Hour
)

type ChallengesService struct {
	repo     repository.ChallengesRepositoryI
	creators CreatorCacheI
	clock    clockwork.Clock
	logger   *slog.Logger
}

func NewChallengesService(challengesRepo repository.ChallengesRepositoryI, creators CreatorCacheI, clock clockwork.Clock, logger *slog.Logger) *ChallengesService {
	if challengesRepo == nil {
		log.Fatal("provided nil challengesRepo")
	}
	if creators == nil {
		log.Fatal("provided nil creators cache")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChallengesService{
		repo:     challengesRepo,
		creators: creators,
		clock:    clock,
		logger:   logger,
	}
}

func (cs *ChallengesService) CreateChallenge(ctx context.Context, creatorUsername string, req *CreateChallengeRequest) (*entity.Challenge, error) {
	if req == nil {
		return nil, errorvalues.Validation("request body is required")
	}
	if strings.TrimSpace(creatorUsername) == "" {
		return nil, errorvalues.Validation("creator username is required")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	for i := range req.Tasks {
		req.Tasks[i].Title = strings.TrimSpace(req.Tasks[i].Title)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	start := cs.clock.Now()
	end := entity.EndDate(start, req.Duration, req.DurationUnit)
	c := entity.Challenge{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Duration:        req.Duration,
		DurationUnit:    req.DurationUnit,
		Status:          entity.StatusOngoing,
		StartDate:       start,
		EndDate:         &end,
		TotalTasksCount: len(req.Tasks),
		Tasks:           make([]entity.Task, 0, len(req.Tasks)),
	}
	for _, t := range req.Tasks {
		c.Tasks = append(c.Tasks, entity.Task{Title: t.Title, Description: t.Description})
	}
	created, err := cs.repo.CreateWithTasks(ctx, creatorUsername, &c)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrOngoingChallengeExists):
			return nil, err
		}
		return nil, errorvalues.Infrastructure("creating challenge", err)
	}
	cs.creators.Invalidate(created.CreatorID)
	metrics.ChallengeTransitions.WithLabelValues(string(entity.StatusOngoing)).Inc()
	return created, nil
}

func (cs *ChallengesService) MarkTaskComplete(ctx context.Context, taskID, requesterID uuid.UUID) (*entity.CompletionResult, error) {
	owner, err := cs.repo.GetTaskOwnership(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errorvalues.Infrastructure("loading task", err)
	}
	if owner.CreatorID != requesterID {
		return nil, errorvalues.ErrWrongOwner
	}
	if owner.IsCompleted {
		return nil, errorvalues.ErrTaskAlreadyCompleted
	}
	// A challenge past its deadline must not accept completions.
	cs.CheckAndExpire(ctx, owner.ChallengeID)
	res, err := cs.repo.CompleteTask(ctx, taskID, cs.clock.Now())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaskNotFound),
			errors.Is(err, errorvalues.ErrTaskAlreadyCompleted),
			errors.Is(err, errorvalues.ErrChallengeFinished):
			return nil, err
		}
		return nil, errorvalues.Infrastructure("completing task", err)
	}
	cs.creators.Invalidate(res.CreatorID)
	if res.AllCompleted {
		metrics.ChallengeTransitions.WithLabelValues(string(entity.StatusCompleted)).Inc()
	}
	return res, nil
}

func (cs *ChallengesService) CheckAndExpire(ctx context.Context, challengeID uuid.UUID) *entity.ExpiryResult {
	res, err := cs.expire(ctx, challengeID)
	if err != nil {
		cs.logger.Warn("expiry check failed", slog.String("challenge_id", challengeID.String()), slog.String("error", err.Error()))
		return &entity.ExpiryResult{Success: false}
	}
	if res.StatusChanged {
		cs.creators.Invalidate(res.CreatorID)
	}
	return res
}

// expire runs the deadline transition without touching the cache.
func (cs *ChallengesService) expire(ctx context.Context, challengeID uuid.UUID) (*entity.ExpiryResult, error) {
	res, err := cs.repo.Expire(ctx, challengeID, cs.clock.Now())
	if err != nil {
		return nil, err
	}
	if res.StatusChanged {
		metrics.ChallengeTransitions.WithLabelValues(string(res.NewStatus)).Inc()
	}
	return res, nil
}

func (cs *ChallengesService) GetCreatorDetails(ctx context.Context, creatorID uuid.UUID) (*entity.CreatorDetails, error) {
	details, err := cs.creators.Get(ctx, creatorID, func(ctx context.Context) (*entity.CreatorDetails, error) {
		return cs.loadCreator(ctx, creatorID)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) || errors.Is(err, errorvalues.ErrInfrastructure) {
			return nil, err
		}
		return nil, errorvalues.Infrastructure("reading creator cache", err)
	}
	return details, nil
}

// loadCreator must not invalidate creatorID: the value it returns is about to be stored.
func (cs *ChallengesService) loadCreator(ctx context.Context, creatorID uuid.UUID) (*entity.CreatorDetails, error) {
	ongoingID, ok, err := cs.repo.FindOngoingID(ctx, creatorID)
	if err != nil {
		cs.logger.Warn("searching ongoing challenge failed", slog.String("creator_id", creatorID.String()), slog.String("error", err.Error()))
	} else if ok {
		if _, err = cs.expire(ctx, ongoingID); err != nil {
			cs.logger.Warn("expiry check failed", slog.String("challenge_id", ongoingID.String()), slog.String("error", err.Error()))
		}
	}
	details, err := cs.repo.GetCreatorDetails(ctx, creatorID, CreatorChallengesLimit)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errorvalues.Infrastructure("loading creator details", err)
	}
	return details, nil
}

func (cs *ChallengesService) GetTopChallenges(ctx context.Context) ([]entity.Challenge, error) {
	now := cs.clock.Now()
	challenges, err := cs.repo.ListTop(ctx, now.Add(-TopChallengesWindow), TopChallengesLimit)
	if err != nil {
		return nil, errorvalues.Infrastructure("listing top challenges", err)
	}
	changed := false
	for i := range challenges {
		if !challenges[i].Overdue(now) {
			continue
		}
		res := cs.CheckAndExpire(ctx, challenges[i].ID)
		if res.StatusChanged {
			challenges[i].Status = res.NewStatus
			deadline := challenges[i].Deadline()
			challenges[i].EndDate = &deadline
			changed = true
		}
	}
	if changed {
		// keep ONGOING first, recency inside each group is preserved
		slices.SortStableFunc(challenges, func(a, b entity.Challenge) int {
			return ongoingRank(a) - ongoingRank(b)
		})
	}
	return challenges, nil
}

func (cs *ChallengesService) GetOngoingChallenges(ctx context.Context) ([]entity.Challenge, error) {
	now := cs.clock.Now()
	challenges, err := cs.repo.ListOngoing(ctx, now.Add(-OngoingWindow), OngoingChallengesLimit)
	if err != nil {
		return nil, errorvalues.Infrastructure("listing ongoing challenges", err)
	}
	return slices.DeleteFunc(challenges, func(c entity.Challenge) bool {
		if !c.Overdue(now) {
			return false
		}
		cs.CheckAndExpire(ctx, c.ID)
		return true
	}), nil
}

func ongoingRank(c entity.Challenge) int {
	if c.Status == entity.StatusOngoing {
		return 0
	}
	return 1
}
