package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/challenger/internal/error_values"
)

type VisitsRepository struct {
	conn PgConnection
}

func NewVisitsRepo(conn PgConnection) *VisitsRepository {
	mustPing(conn, "visitsRepo")
	return &VisitsRepository{
		conn: conn,
	}
}

func (vr *VisitsRepository) Track(ctx context.Context, ownerID uuid.UUID, visitorKey string) (bool, error) {
	counted := false
	err := inTx(ctx, vr.conn, func(tx pgx.Tx) error {
		// Primary key (user_id, visitor_key) rejects duplicates, concurrent ones included.
		ct, err := tx.Exec(ctx, `INSERT INTO profile_visits (user_id, visitor_key) VALUES ($1, $2) ON CONFLICT (user_id, visitor_key) DO NOTHING;`, ownerID, visitorKey)
		if err != nil {
			if code, _ := pgCode(err); code == pgForeignKeyViolation {
				return errorvalues.ErrUserNotFound
			}
			return errors.New("recording visit error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return nil
		}
		ct, err = tx.Exec(ctx, `UPDATE users SET profile_visit_count = profile_visit_count + 1 WHERE id = $1;`, ownerID)
		if err != nil {
			return errors.New("incrementing visit count error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrUserNotFound
		}
		counted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return counted, nil
}
