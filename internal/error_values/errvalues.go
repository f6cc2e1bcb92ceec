package errorvalues

import (
	"errors"
	"fmt"
)

// Categories. Concrete errors below wrap exactly one of them, so callers can
// branch with errors.Is on either level.
var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("conflict")
	ErrInfrastructure = errors.New("infrastructure error")
)

var (
	ErrUserNotFound = fmt.Errorf("user doesn't exist: %w", ErrNotFound)
	ErrTaskNotFound = fmt.Errorf("task doesn't exist: %w", ErrNotFound)

	ErrWrongOwner   = fmt.Errorf("you can only complete your own tasks: %w", ErrUnauthorized)
	ErrWrongSubject = fmt.Errorf("profile id doesn't match authenticated user: %w", ErrUnauthorized)
	ErrInvalidToken = fmt.Errorf("invalid token: %w", ErrUnauthorized)

	ErrOngoingChallengeExists = fmt.Errorf("you already have an ongoing challenge, complete it or wait for it to finish before starting a new one: %w", ErrConflict)
	ErrTaskAlreadyCompleted   = fmt.Errorf("task is already completed: %w", ErrConflict)
	ErrChallengeFinished      = fmt.Errorf("challenge is already finished: %w", ErrConflict)
	ErrUsernameTaken          = fmt.Errorf("username already exists: %w", ErrConflict)
	ErrEmailTaken             = fmt.Errorf("email already exists: %w", ErrConflict)
	ErrUserExists             = fmt.Errorf("such user already exists: %w", ErrConflict)
)

// Validation builds a human-readable validation failure.
func Validation(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// Infrastructure marks err as a storage or network failure that happened during op.
func Infrastructure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInfrastructure, op, err)
}
