package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/challenger/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . UsersRepositoryI,ChallengesRepositoryI,VisitsRepositoryI

type UsersRepositoryI interface {
	// Creates new user with the id issued by the identity provider
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Inspects if username is already taken
	UsernameExists(ctx context.Context, username string) (bool, error)
	// Refreshes email, name and avatar. Username is immutable
	UpdateProfile(ctx context.Context, user *entity.User) (*entity.User, error)
}

type ChallengesRepositoryI interface {
	// Creates challenge with its tasks and flags the creator as busy, in one transaction.
	// An overdue ONGOING challenge of the creator is expired in the same transaction.
	// Fails with ErrUserNotFound or ErrOngoingChallengeExists
	CreateWithTasks(ctx context.Context, creatorUsername string, challenge *entity.Challenge) (*entity.Challenge, error)
	// Loads task with owning challenge's creator and counters
	GetTaskOwnership(ctx context.Context, taskID uuid.UUID) (*entity.TaskOwnership, error)
	// Completes task, bumps challenge counters and finishes challenge/creator state
	// when the last task is done. Guarded by compare-and-set on is_completed
	CompleteTask(ctx context.Context, taskID uuid.UUID, at time.Time) (*entity.CompletionResult, error)
	// Moves an overdue ONGOING challenge to its terminal status. No-op otherwise
	Expire(ctx context.Context, id uuid.UUID, at time.Time) (*entity.ExpiryResult, error)
	// Returns id of creator's ONGOING challenge, if any
	FindOngoingID(ctx context.Context, creatorID uuid.UUID) (uuid.UUID, bool, error)
	// Challenges created since, ONGOING first, newest first
	ListTop(ctx context.Context, since time.Time, limit int) ([]entity.Challenge, error)
	// ONGOING challenges created since, newest first
	ListOngoing(ctx context.Context, since time.Time, limit int) ([]entity.Challenge, error)
	// Profile with newest challenges and their tasks, read from one snapshot
	GetCreatorDetails(ctx context.Context, creatorID uuid.UUID, challengesLimit int) (*entity.CreatorDetails, error)
}

type VisitsRepositoryI interface {
	// Records visit of visitorKey to owner's profile. Returns false if it was already counted
	Track(ctx context.Context, ownerID uuid.UUID, visitorKey string) (bool, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
