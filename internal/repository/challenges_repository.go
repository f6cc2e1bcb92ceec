package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/pkg/entity"
)

const (
	challengeColumns = `id, creator_id, title, description, category, duration, duration_unit, status, start_date, end_date, total_tasks_count, completed_tasks_count, created_at`
	listColumns      = `c.id, c.creator_id, c.title, c.description, c.category, c.duration, c.duration_unit, c.status, c.start_date, c.end_date, c.total_tasks_count, c.completed_tasks_count, c.created_at, u.name, u.username, u.avatar`
	taskColumns      = `id, challenge_id, title, description, is_completed, completed_at, created_at`
)

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(conn PgConnection) *ChallengesRepository {
	mustPing(conn, "challengesRepo")
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) CreateWithTasks(ctx context.Context, creatorUsername string, challenge *entity.Challenge) (*entity.Challenge, error) {
	created := *challenge
	created.Tasks = make([]entity.Task, 0, len(challenge.Tasks))
	err := inTx(ctx, cr.conn, func(tx pgx.Tx) error {
		var hasOngoing bool
		// Row lock serializes concurrent creates for the same user.
		row := tx.QueryRow(ctx, `SELECT id, has_ongoing_challenge FROM users WHERE username = $1 FOR UPDATE;`, creatorUsername)
		if err := row.Scan(&created.CreatorID, &hasOngoing); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrUserNotFound
			}
			return errors.New("locking creator error: " + err.Error())
		}
		if hasOngoing {
			closed, err := closeOverdueOngoing(ctx, tx, created.CreatorID, created.StartDate)
			if err != nil {
				return err
			}
			if !closed {
				return errorvalues.ErrOngoingChallengeExists
			}
		}
		_, err := tx.Exec(ctx, `UPDATE users SET has_ongoing_challenge = TRUE, updated_at = NOW() WHERE id = $1;`, created.CreatorID)
		if err != nil {
			return errors.New("flagging creator error: " + err.Error())
		}
		row = tx.QueryRow(ctx, `INSERT INTO challenges (creator_id, title, description, category, duration, duration_unit, status, start_date, end_date, total_tasks_count, completed_tasks_count) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0) RETURNING id, created_at;`,
			created.CreatorID,
			created.Title,
			created.Description,
			created.Category,
			created.Duration,
			created.DurationUnit,
			created.Status,
			created.StartDate,
			created.EndDate,
			created.TotalTasksCount,
		)
		if err = row.Scan(&created.ID, &created.CreatedAt); err != nil {
			if code, _ := pgCode(err); code == pgUniqueViolation {
				return errorvalues.ErrOngoingChallengeExists
			}
			return errors.New("creating challenge error: " + err.Error())
		}
		for i, task := range challenge.Tasks {
			task.ChallengeID = created.ID
			row = tx.QueryRow(ctx, `INSERT INTO tasks (challenge_id, title, description, position) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
				created.ID, task.Title, task.Description, i,
			)
			if err = row.Scan(&task.ID, &task.CreatedAt); err != nil {
				return errors.New("creating task error: " + err.Error())
			}
			created.Tasks = append(created.Tasks, task)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	created.CompletedTasksCount = 0
	return &created, nil
}

func (cr *ChallengesRepository) GetTaskOwnership(ctx context.Context, taskID uuid.UUID) (*entity.TaskOwnership, error) {
	var o entity.TaskOwnership
	row := cr.conn.QueryRow(ctx, `SELECT t.id, t.challenge_id, c.creator_id, t.is_completed, c.total_tasks_count, c.completed_tasks_count FROM tasks t JOIN challenges c ON c.id = t.challenge_id WHERE t.id = $1;`, taskID)
	err := row.Scan(&o.TaskID, &o.ChallengeID, &o.CreatorID, &o.IsCompleted, &o.TotalTasksCount, &o.CompletedTasksCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task ownership error: " + err.Error())
	}
	return &o, nil
}

func (cr *ChallengesRepository) CompleteTask(ctx context.Context, taskID uuid.UUID, at time.Time) (*entity.CompletionResult, error) {
	res := entity.CompletionResult{
		Task: entity.CompletedTask{ID: taskID, IsCompleted: true, CompletedAt: at},
	}
	err := inTx(ctx, cr.conn, func(tx pgx.Tx) error {
		var creatorID uuid.UUID
		// Lock order for writers touching both tables: users, then tasks, then challenges.
		row := tx.QueryRow(ctx, `SELECT u.id FROM users u JOIN challenges c ON c.creator_id = u.id JOIN tasks t ON t.challenge_id = c.id WHERE t.id = $1 FOR UPDATE OF u;`, taskID)
		if err := row.Scan(&creatorID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrTaskNotFound
			}
			return errors.New("locking creator error: " + err.Error())
		}
		var challengeID uuid.UUID
		// The is_completed predicate is the idempotency guard: a concurrent
		// completion blocks on the row lock and then matches nothing.
		row = tx.QueryRow(ctx, `UPDATE tasks SET is_completed = TRUE, completed_at = $2 WHERE id = $1 AND is_completed = FALSE RETURNING challenge_id;`, taskID, at)
		if err := row.Scan(&challengeID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return taskMissOrDone(ctx, tx, taskID)
			}
			return errors.New("completing task error: " + err.Error())
		}
		row = tx.QueryRow(ctx, `UPDATE challenges SET completed_tasks_count = completed_tasks_count + 1, status = CASE WHEN completed_tasks_count + 1 >= total_tasks_count THEN 'COMPLETED' ELSE status END, end_date = CASE WHEN completed_tasks_count + 1 >= total_tasks_count THEN $2 ELSE end_date END WHERE id = $1 AND status = 'ONGOING' RETURNING creator_id, status, completed_tasks_count, total_tasks_count;`,
			challengeID, at,
		)
		res.Challenge.ID = challengeID
		err := row.Scan(&res.CreatorID, &res.Challenge.Status, &res.Challenge.CompletedTasksCount, &res.Challenge.TotalTasksCount)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrChallengeFinished
			}
			return errors.New("updating challenge progress error: " + err.Error())
		}
		if res.Challenge.Status != entity.StatusCompleted {
			return nil
		}
		res.AllCompleted = true
		_, err = tx.Exec(ctx, `UPDATE users SET has_ongoing_challenge = FALSE, updated_at = NOW() WHERE id = $1;`, res.CreatorID)
		if err != nil {
			return errors.New("releasing creator error: " + err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Success = true
	return &res, nil
}

func taskMissOrDone(ctx context.Context, tx pgx.Tx, taskID uuid.UUID) error {
	var completed bool
	err := tx.QueryRow(ctx, `SELECT is_completed FROM tasks WHERE id = $1;`, taskID).Scan(&completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrTaskNotFound
		}
		return errors.New("inspecting task error: " + err.Error())
	}
	return errorvalues.ErrTaskAlreadyCompleted
}

func (cr *ChallengesRepository) Expire(ctx context.Context, id uuid.UUID, at time.Time) (*entity.ExpiryResult, error) {
	res := entity.ExpiryResult{Success: true}
	err := inTx(ctx, cr.conn, func(tx pgx.Tx) error {
		var creatorID uuid.UUID
		err := tx.QueryRow(ctx, `SELECT u.id FROM users u JOIN challenges c ON c.creator_id = u.id WHERE c.id = $1 FOR UPDATE OF u;`, id).Scan(&creatorID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return errors.New("locking creator error: " + err.Error())
		}
		c, err := scanChallenge(tx.QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = $1 FOR UPDATE;`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return errors.New("locking challenge error: " + err.Error())
		}
		if !c.Overdue(at) {
			return nil
		}
		status, err := expireLocked(ctx, tx, c)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE users SET has_ongoing_challenge = FALSE, updated_at = NOW() WHERE id = $1;`, c.CreatorID)
		if err != nil {
			return errors.New("releasing creator error: " + err.Error())
		}
		res.StatusChanged = true
		res.NewStatus = status
		res.CreatorID = c.CreatorID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// closeOverdueOngoing expires the creator's ONGOING challenge if its deadline
// passed by at. It reports whether the creator is free to start a new one.
func closeOverdueOngoing(ctx context.Context, tx pgx.Tx, creatorID uuid.UUID, at time.Time) (bool, error) {
	c, err := scanChallenge(tx.QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE creator_id = $1 AND status = 'ONGOING' FOR UPDATE;`, creatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// flag without a challenge behind it
			return true, nil
		}
		return false, errors.New("locking ongoing challenge error: " + err.Error())
	}
	if !c.Overdue(at) {
		return false, nil
	}
	if _, err = expireLocked(ctx, tx, c); err != nil {
		return false, err
	}
	return true, nil
}

func expireLocked(ctx context.Context, tx pgx.Tx, c *entity.Challenge) (entity.ChallengeStatus, error) {
	status := c.ExpiredStatus()
	_, err := tx.Exec(ctx, `UPDATE challenges SET status = $2, end_date = $3 WHERE id = $1;`, c.ID, status, c.Deadline())
	if err != nil {
		return "", errors.New("expiring challenge error: " + err.Error())
	}
	return status, nil
}

func (cr *ChallengesRepository) FindOngoingID(ctx context.Context, creatorID uuid.UUID) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := cr.conn.QueryRow(ctx, `SELECT id FROM challenges WHERE creator_id = $1 AND status = 'ONGOING' LIMIT 1;`, creatorID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, errors.New("searching ongoing challenge error: " + err.Error())
	}
	return id, true, nil
}

func (cr *ChallengesRepository) ListTop(ctx context.Context, since time.Time, limit int) ([]entity.Challenge, error) {
	return cr.list(ctx, `SELECT `+listColumns+` FROM challenges c JOIN users u ON u.id = c.creator_id WHERE c.created_at >= $1 ORDER BY (c.status = 'ONGOING') DESC, c.created_at DESC LIMIT $2;`, since, limit)
}

func (cr *ChallengesRepository) ListOngoing(ctx context.Context, since time.Time, limit int) ([]entity.Challenge, error) {
	return cr.list(ctx, `SELECT `+listColumns+` FROM challenges c JOIN users u ON u.id = c.creator_id WHERE c.status = 'ONGOING' AND c.created_at >= $1 ORDER BY c.created_at DESC LIMIT $2;`, since, limit)
}

func (cr *ChallengesRepository) list(ctx context.Context, query string, since time.Time, limit int) ([]entity.Challenge, error) {
	rows, err := cr.conn.Query(ctx, query, since, limit)
	if err != nil {
		return nil, errors.New("listing challenges error: " + err.Error())
	}
	defer rows.Close()
	challenges := make([]entity.Challenge, 0, limit)
	for rows.Next() {
		var c entity.Challenge
		creator := entity.CreatorSummary{}
		err = rows.Scan(&c.ID, &c.CreatorID, &c.Title, &c.Description, &c.Category, &c.Duration, &c.DurationUnit,
			&c.Status, &c.StartDate, &c.EndDate, &c.TotalTasksCount, &c.CompletedTasksCount, &c.CreatedAt,
			&creator.Name, &creator.Username, &creator.Avatar)
		if err != nil {
			return nil, errors.New("challenge row parsing error: " + err.Error())
		}
		creator.ID = c.CreatorID
		c.Creator = &creator
		challenges = append(challenges, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected challenge rows error: " + err.Error())
	}
	return challenges, nil
}

func (cr *ChallengesRepository) GetCreatorDetails(ctx context.Context, creatorID uuid.UUID, challengesLimit int) (*entity.CreatorDetails, error) {
	tx, err := cr.conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, errors.New("beginning snapshot error: " + err.Error())
	}
	details, err := readCreatorDetails(ctx, tx, creatorID, challengesLimit)
	if err != nil {
		tx.Rollback(ctx)
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing snapshot error: " + err.Error())
	}
	return details, nil
}

func readCreatorDetails(ctx context.Context, tx pgx.Tx, creatorID uuid.UUID, limit int) (*entity.CreatorDetails, error) {
	var d entity.CreatorDetails
	row := tx.QueryRow(ctx, `SELECT id, name, username, avatar, profile_visit_count, created_at FROM users WHERE id = $1;`, creatorID)
	if err := row.Scan(&d.ID, &d.Name, &d.Username, &d.Avatar, &d.ProfileVisitCount, &d.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("getting creator error: " + err.Error())
	}
	rows, err := tx.Query(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE creator_id = $1 ORDER BY created_at DESC LIMIT $2;`, creatorID, limit)
	if err != nil {
		return nil, errors.New("getting creator challenges error: " + err.Error())
	}
	d.Challenges = make([]entity.Challenge, 0, limit)
	ids := make([]uuid.UUID, 0, limit)
	index := make(map[uuid.UUID]int, limit)
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			rows.Close()
			return nil, errors.New("challenge row parsing error: " + err.Error())
		}
		c.Tasks = make([]entity.Task, 0)
		index[c.ID] = len(d.Challenges)
		ids = append(ids, c.ID)
		d.Challenges = append(d.Challenges, *c)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected challenge rows error: " + err.Error())
	}
	if len(ids) == 0 {
		return &d, nil
	}
	rows, err = tx.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE challenge_id = ANY($1) ORDER BY position ASC;`, ids)
	if err != nil {
		return nil, errors.New("getting creator tasks error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var t entity.Task
		err = rows.Scan(&t.ID, &t.ChallengeID, &t.Title, &t.Description, &t.IsCompleted, &t.CompletedAt, &t.CreatedAt)
		if err != nil {
			return nil, errors.New("task row parsing error: " + err.Error())
		}
		i := index[t.ChallengeID]
		d.Challenges[i].Tasks = append(d.Challenges[i].Tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected task rows error: " + err.Error())
	}
	return &d, nil
}

func scanChallenge(row pgx.Row) (*entity.Challenge, error) {
	var c entity.Challenge
	err := row.Scan(&c.ID, &c.CreatorID, &c.Title, &c.Description, &c.Category, &c.Duration, &c.DurationUnit,
		&c.Status, &c.StartDate, &c.EndDate, &c.TotalTasksCount, &c.CompletedTasksCount, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
