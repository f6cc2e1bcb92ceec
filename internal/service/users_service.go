package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/internal/metrics"
	"github.com/limbo/challenger/internal/repository"
	"github.com/limbo/challenger/pkg/entity"
)

const (
	minUsernameLength   = 3
	defaultName         = "Anonymous User"
	usernameSuffixLen   = 4
	usernameCreateTries = 3
)

type UsersService struct {
	repo     repository.UsersRepositoryI
	visits   repository.VisitsRepositoryI
	creators CreatorCacheI
	logger   *slog.Logger
}

func NewUsersService(usersRepo repository.UsersRepositoryI, visitsRepo repository.VisitsRepositoryI, creators CreatorCacheI, logger *slog.Logger) *UsersService {
	if usersRepo == nil || visitsRepo == nil {
		log.Fatal("provided nil users or visits repo")
	}
	if creators == nil {
		log.Fatal("provided nil creators cache")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UsersService{
		repo:     usersRepo,
		visits:   visitsRepo,
		creators: creators,
		logger:   logger,
	}
}

func (us *UsersService) UpsertUser(ctx context.Context, subject uuid.UUID, req *UpsertUserRequest) (*entity.User, error) {
	if req == nil {
		return nil, errorvalues.Validation("request body is required")
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.ID != subject {
		return nil, errorvalues.ErrWrongSubject
	}
	user := entity.User{
		ID:     req.ID,
		Email:  req.Email,
		Name:   displayName(req),
		Avatar: req.Avatar,
	}
	if user.Avatar != nil && *user.Avatar == "" {
		user.Avatar = nil
	}
	existing, err := us.repo.FindByID(ctx, req.ID)
	switch {
	case err == nil:
		user.Username = existing.Username
		return us.refreshProfile(ctx, &user)
	case !errors.Is(err, errorvalues.ErrUserNotFound):
		return nil, errorvalues.Infrastructure("searching user", err)
	}
	created, err := us.createUser(ctx, &user, usernameFor(req))
	if errors.Is(err, errorvalues.ErrUserExists) {
		// concurrent first sign-in with the same id
		return us.refreshProfile(ctx, &user)
	}
	return created, err
}

func (us *UsersService) refreshProfile(ctx context.Context, user *entity.User) (*entity.User, error) {
	updated, err := us.repo.UpdateProfile(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmailTaken) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errorvalues.Infrastructure("updating user", err)
	}
	us.creators.Invalidate(updated.ID)
	return updated, nil
}

func (us *UsersService) createUser(ctx context.Context, user *entity.User, username string) (*entity.User, error) {
	taken, err := us.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, errorvalues.Infrastructure("inspecting username", err)
	}
	candidate := username
	for try := 0; try < usernameCreateTries; try++ {
		if taken {
			candidate = username + "_" + randomSuffix()
		}
		user.Username = candidate
		err = us.repo.Create(ctx, user)
		switch {
		case err == nil:
			created, err := us.repo.FindByID(ctx, user.ID)
			if err != nil {
				return nil, errorvalues.Infrastructure("reading created user", err)
			}
			us.creators.Invalidate(created.ID)
			return created, nil
		case errors.Is(err, errorvalues.ErrUsernameTaken):
			taken = true
		case errors.Is(err, errorvalues.ErrEmailTaken), errors.Is(err, errorvalues.ErrUserExists):
			return nil, err
		default:
			return nil, errorvalues.Infrastructure("creating user", err)
		}
	}
	return nil, errorvalues.ErrUsernameTaken
}

func (us *UsersService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errorvalues.Infrastructure("searching user", err)
	}
	return user, nil
}

func (us *UsersService) TrackVisit(ctx context.Context, ownerID uuid.UUID, visitorKey string) bool {
	visitorKey = strings.TrimSpace(visitorKey)
	if visitorKey == "" || ownerID == uuid.Nil {
		return false
	}
	counted, err := us.visits.Track(ctx, ownerID, visitorKey)
	if err != nil {
		us.logger.Warn("tracking visit failed", slog.String("owner_id", ownerID.String()), slog.String("error", err.Error()))
		return false
	}
	if counted {
		us.creators.Invalidate(ownerID)
		metrics.VisitsCounted.Inc()
	}
	return true
}

// usernameFor picks the requested username, then the email local part, then an id based one.
func usernameFor(req *UpsertUserRequest) string {
	if req.Username != nil {
		if u := cleanUsername(*req.Username); len(u) >= minUsernameLength {
			return u
		}
	}
	if u := cleanUsername(emailLocalPart(req.Email)); len(u) >= minUsernameLength {
		return u
	}
	return "user_" + req.ID.String()[:8]
}

func cleanUsername(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return -1
	}, slug.Make(s))
}

func displayName(req *UpsertUserRequest) string {
	if req.Name != nil {
		if n := strings.TrimSpace(*req.Name); n != "" {
			return n
		}
	}
	if local := emailLocalPart(req.Email); local != "" {
		return local
	}
	return defaultName
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:usernameSuffixLen]
}
