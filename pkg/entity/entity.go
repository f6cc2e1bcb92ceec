package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChallengeStatus string

const (
	StatusOngoing   ChallengeStatus = "ONGOING"
	StatusCompleted ChallengeStatus = "COMPLETED"
	StatusFailed    ChallengeStatus = "FAILED"
)

type DurationUnit string

const (
	UnitDays   DurationUnit = "days"
	UnitWeeks  DurationUnit = "weeks"
	UnitMonths DurationUnit = "months"
)

type User struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	Username            string    `json:"username"`
	Name                string    `json:"name"`
	Avatar              *string   `json:"avatar"`
	HasOngoingChallenge bool      `json:"has_ongoing_challenge"`
	ProfileVisitCount   int       `json:"profile_visit_count"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CreatorSummary is the public slice of a user shown next to a challenge.
type CreatorSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Avatar   *string   `json:"avatar"`
}

type Challenge struct {
	ID                  uuid.UUID       `json:"id"`
	CreatorID           uuid.UUID       `json:"creator_id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Category            *string         `json:"category,omitempty"`
	Duration            int             `json:"duration"`
	DurationUnit        DurationUnit    `json:"duration_unit"`
	Status              ChallengeStatus `json:"status"`
	StartDate           time.Time       `json:"start_date"`
	EndDate             *time.Time      `json:"end_date"`
	TotalTasksCount     int             `json:"total_tasks_count"`
	CompletedTasksCount int             `json:"completed_tasks_count"`
	CreatedAt           time.Time       `json:"created_at"`
	Tasks               []Task          `json:"tasks,omitempty"`
	Creator             *CreatorSummary `json:"creator,omitempty"`
}

type Task struct {
	ID          uuid.UUID  `json:"id"`
	ChallengeID uuid.UUID  `json:"challenge_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreatorDetails is the aggregated profile view served by the creator cache.
type CreatorDetails struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Username          string      `json:"username"`
	Avatar            *string     `json:"avatar"`
	ProfileVisitCount int         `json:"profile_visit_count"`
	CreatedAt         time.Time   `json:"created_at"`
	Challenges        []Challenge `json:"challenges"`
}

// TaskOwnership is what markTaskComplete needs to authorize a completion.
type TaskOwnership struct {
	TaskID              uuid.UUID
	ChallengeID         uuid.UUID
	CreatorID           uuid.UUID
	IsCompleted         bool
	TotalTasksCount     int
	CompletedTasksCount int
}

type CompletedTask struct {
	ID          uuid.UUID `json:"id"`
	IsCompleted bool      `json:"is_completed"`
	CompletedAt time.Time `json:"completed_at"`
}

type ChallengeProgress struct {
	ID                  uuid.UUID       `json:"id"`
	Status              ChallengeStatus `json:"status"`
	CompletedTasksCount int             `json:"completed_tasks_count"`
	TotalTasksCount     int             `json:"total_tasks_count"`
}

type CompletionResult struct {
	Success      bool              `json:"success"`
	AllCompleted bool              `json:"all_completed"`
	Task         CompletedTask     `json:"task"`
	Challenge    ChallengeProgress `json:"challenge"`
	CreatorID    uuid.UUID         `json:"-"`
}

type ExpiryResult struct {
	Success       bool            `json:"success"`
	StatusChanged bool            `json:"status_changed"`
	NewStatus     ChallengeStatus `json:"new_status,omitempty"`
	CreatorID     uuid.UUID       `json:"-"`
}
