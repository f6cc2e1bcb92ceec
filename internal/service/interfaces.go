package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/challenger/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . ChallengesServiceI,UsersServiceI

type TaskRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type CreateChallengeRequest struct {
	Title        string              `json:"title" validate:"required,max=200"`
	Description  string              `json:"description" validate:"required,max=2000"`
	Category     *string             `json:"category,omitempty" validate:"omitempty,max=50"`
	Duration     int                 `json:"duration" validate:"gt=0"`
	DurationUnit entity.DurationUnit `json:"duration_unit" validate:"required,oneof=days weeks months"`
	Tasks        []TaskRequest       `json:"tasks" validate:"required,min=1,max=100,dive"`
}

type UpsertUserRequest struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Email    string    `json:"email" validate:"required,email"`
	Username *string   `json:"username,omitempty" validate:"omitempty,max=50"`
	Name     *string   `json:"name,omitempty" validate:"omitempty,max=100"`
	Avatar   *string   `json:"avatar,omitempty" validate:"omitempty,url"`
}

// CreatorCacheI is the creator-details cache the services read through and invalidate.
type CreatorCacheI interface {
	Get(ctx context.Context, creatorID uuid.UUID, load func(ctx context.Context) (*entity.CreatorDetails, error)) (*entity.CreatorDetails, error)
	Invalidate(creatorID uuid.UUID)
}

type ChallengesServiceI interface {
	// Validates request and atomically creates challenge with its tasks for the creator
	CreateChallenge(ctx context.Context, creatorUsername string, req *CreateChallengeRequest) (*entity.Challenge, error)
	// Completes task on behalf of requester, who must be the challenge creator
	MarkTaskComplete(ctx context.Context, taskID, requesterID uuid.UUID) (*entity.CompletionResult, error)
	// Lazily moves overdue challenge to its terminal status. Never fails
	CheckAndExpire(ctx context.Context, challengeID uuid.UUID) *entity.ExpiryResult
	// Cached profile with up to 10 newest challenges and their tasks
	GetCreatorDetails(ctx context.Context, creatorID uuid.UUID) (*entity.CreatorDetails, error)
	GetTopChallenges(ctx context.Context) ([]entity.Challenge, error)
	GetOngoingChallenges(ctx context.Context) ([]entity.Challenge, error)
}

type UsersServiceI interface {
	// Creates or refreshes the profile of the authenticated principal
	UpsertUser(ctx context.Context, subject uuid.UUID, req *UpsertUserRequest) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Counts visitor once per profile. Reports false on any failure
	TrackVisit(ctx context.Context, ownerID uuid.UUID, visitorKey string) bool
}
