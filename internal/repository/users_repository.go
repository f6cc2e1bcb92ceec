package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/pkg/entity"
)

const userColumns = `id, email, username, name, avatar, has_ongoing_challenge, profile_visit_count, created_at, updated_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (id, email, username, name, avatar) VALUES ($1, $2, $3, $4, $5);`,
		user.ID, user.Email, user.Username, user.Name, user.Avatar,
	)
	if err != nil {
		code, constraint := pgCode(err)
		if code == pgUniqueViolation {
			switch constraint {
			case "users_username_key":
				return errorvalues.ErrUsernameTaken
			case "users_email_key":
				return errorvalues.ErrEmailTaken
			default:
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	row := ur.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1);`, username)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if username exists error: " + err.Error())
	}
	return exists, nil
}

func (ur *UsersRepository) UpdateProfile(ctx context.Context, user *entity.User) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `UPDATE users SET email = $1, name = $2, avatar = $3, updated_at = NOW() WHERE id = $4 RETURNING `+userColumns+`;`,
		user.Email,
		user.Name,
		user.Avatar,
		user.ID,
	)
	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		if code, _ := pgCode(err); code == pgUniqueViolation {
			return nil, errorvalues.ErrEmailTaken
		}
		return nil, errors.New("updating user error: " + err.Error())
	}
	return updated, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Name, &u.Avatar, &u.HasOngoingChallenge,
		&u.ProfileVisitCount, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
