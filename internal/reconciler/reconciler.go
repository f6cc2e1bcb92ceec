// Package reconciler keeps one creator profile view in sync with the server
// while task completions are applied optimistically.
package reconciler

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/pkg/entity"
)

var (
	ErrViewClosed    = errors.New("no profile view is open")
	ErrStaleResponse = errors.New("response belongs to a closed view")
)

type Phase int

const (
	Idle Phase = iota
	Optimistic
	Confirmed
	Reverting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Optimistic:
		return "optimistic"
	case Confirmed:
		return "confirmed"
	case Reverting:
		return "reverting"
	}
	return "unknown"
}

type event int

const (
	evApply event = iota
	evConfirm
	evFail
	evSettle
)

var transitions = map[Phase]map[event]Phase{
	Idle:       {evApply: Optimistic},
	Optimistic: {evApply: Optimistic, evConfirm: Confirmed, evFail: Reverting},
	Confirmed:  {evApply: Optimistic, evConfirm: Confirmed, evFail: Reverting, evSettle: Idle},
	Reverting:  {evApply: Optimistic, evConfirm: Reverting, evFail: Reverting, evSettle: Idle},
}

// Backend is the part of the API the reconciler talks to. *client.Client satisfies it.
type Backend interface {
	GetCreatorDetails(ctx context.Context, creatorID uuid.UUID) (*entity.CreatorDetails, error)
	TrackVisit(ctx context.Context, creatorID uuid.UUID) (bool, error)
	CompleteTask(ctx context.Context, taskID uuid.UUID) (*entity.CompletionResult, error)
}

type Options struct {
	// Viewer is the signed-in user. Only the creator may complete tasks.
	Viewer uuid.UUID
	// OnChange is called with every new view state. It runs under the
	// reconciler lock and must not call back into the Reconciler.
	OnChange func(view *entity.CreatorDetails, phase Phase)
	Clock    clockwork.Clock
	Logger   *slog.Logger
}

type Reconciler struct {
	backend Backend
	opts    Options

	mu           sync.Mutex
	open         bool
	creatorID    uuid.UUID
	epoch        uint64
	seq          uint64
	pending      int
	needsRefetch bool
	// discard marks the rendered view as holding a patch the server rejected.
	discard      bool
	phase        Phase
	view         *entity.CreatorDetails
}

func New(backend Backend, opts Options) *Reconciler {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Reconciler{backend: backend, opts: opts}
}

// Open replaces the current view with creatorID's profile and records a visit
// in the background. Results of requests issued for a previous view are dropped.
func (r *Reconciler) Open(ctx context.Context, creatorID uuid.UUID) error {
	r.mu.Lock()
	r.epoch++
	ep := r.epoch
	r.open = true
	r.creatorID = creatorID
	r.view = nil
	r.pending = 0
	r.needsRefetch = false
	r.discard = false
	r.phase = Idle
	r.mu.Unlock()

	details, err := r.backend.GetCreatorDetails(ctx, creatorID)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != ep {
		return ErrStaleResponse
	}
	if err != nil {
		return err
	}
	r.view = details
	r.notifyLocked()

	go func(ctx context.Context) {
		if _, err := r.backend.TrackVisit(ctx, creatorID); err != nil {
			r.opts.Logger.Warn("tracking visit failed", slog.String("creator_id", creatorID.String()), slog.String("error", err.Error()))
		}
	}(context.WithoutCancel(ctx))
	return nil
}

func (r *Reconciler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.epoch++
	r.open = false
	r.view = nil
	r.pending = 0
	r.needsRefetch = false
	r.discard = false
	r.phase = Idle
}

// Snapshot returns a copy of the rendered view. It is nil when nothing is open
// or when a rejected completion could not be replaced by server state.
func (r *Reconciler) Snapshot() *entity.CreatorDetails {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneDetails(r.view)
}

func (r *Reconciler) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// CompleteTask renders the completion at once, then confirms it with the server.
// A failed mutation is undone by refetching the authoritative profile.
func (r *Reconciler) CompleteTask(ctx context.Context, taskID uuid.UUID) error {
	r.mu.Lock()
	if !r.open || r.view == nil {
		r.mu.Unlock()
		return ErrViewClosed
	}
	if r.view.ID != r.opts.Viewer {
		r.mu.Unlock()
		return errorvalues.ErrWrongOwner
	}
	patched, err := r.applyCompletion(taskID)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.view = patched
	r.fire(evApply)
	r.seq++
	r.pending++
	ep := r.epoch
	r.notifyLocked()
	r.mu.Unlock()

	res, callErr := r.backend.CompleteTask(ctx, taskID)

	r.mu.Lock()
	if r.epoch != ep {
		r.mu.Unlock()
		return ErrStaleResponse
	}
	r.pending--
	if callErr != nil {
		r.fire(evFail)
		r.needsRefetch = true
		r.discard = true
	} else {
		r.fire(evConfirm)
		if res.AllCompleted {
			r.needsRefetch = true
		}
	}
	r.notifyLocked()
	refetch := r.pending == 0 && r.needsRefetch
	if r.pending == 0 && !r.needsRefetch {
		r.fire(evSettle)
		r.notifyLocked()
	}
	r.mu.Unlock()

	if refetch {
		r.refetch(ctx, ep)
	}
	return callErr
}

// refetch replaces the view with server state unless the view was closed or a
// newer mutation started meanwhile. In the latter case the last mutation to
// settle refetches again.
func (r *Reconciler) refetch(ctx context.Context, ep uint64) {
	r.mu.Lock()
	issued := r.seq
	creatorID := r.creatorID
	r.mu.Unlock()

	details, err := r.backend.GetCreatorDetails(context.WithoutCancel(ctx), creatorID)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != ep {
		return
	}
	if err != nil {
		r.opts.Logger.Error("refetching profile failed", slog.String("creator_id", creatorID.String()), slog.String("error", err.Error()))
		if r.discard {
			// Nothing authoritative to show: drop the view instead of keeping the rejected patch.
			r.view = nil
			r.discard = false
			r.needsRefetch = r.pending > 0
		}
		if r.pending == 0 {
			r.fire(evSettle)
		}
		r.notifyLocked()
		return
	}
	if r.seq != issued || r.pending > 0 {
		return
	}
	r.view = details
	r.needsRefetch = false
	r.discard = false
	r.fire(evSettle)
	r.notifyLocked()
}

func (r *Reconciler) applyCompletion(taskID uuid.UUID) (*entity.CreatorDetails, error) {
	next := cloneDetails(r.view)
	for i := range next.Challenges {
		ch := &next.Challenges[i]
		for j := range ch.Tasks {
			task := &ch.Tasks[j]
			if task.ID != taskID {
				continue
			}
			if task.IsCompleted {
				return nil, errorvalues.ErrTaskAlreadyCompleted
			}
			if ch.Status != entity.StatusOngoing {
				return nil, errorvalues.ErrChallengeFinished
			}
			now := r.opts.Clock.Now()
			task.IsCompleted = true
			task.CompletedAt = &now
			ch.CompletedTasksCount++
			if ch.CompletedTasksCount >= ch.TotalTasksCount {
				ch.Status = entity.StatusCompleted
				ch.EndDate = &now
			}
			return next, nil
		}
	}
	return nil, errorvalues.ErrTaskNotFound
}

func (r *Reconciler) fire(ev event) {
	if next, ok := transitions[r.phase][ev]; ok {
		r.phase = next
	}
}

func (r *Reconciler) notifyLocked() {
	if r.opts.OnChange != nil {
		r.opts.OnChange(cloneDetails(r.view), r.phase)
	}
}

func cloneDetails(d *entity.CreatorDetails) *entity.CreatorDetails {
	if d == nil {
		return nil
	}
	out := *d
	out.Challenges = make([]entity.Challenge, len(d.Challenges))
	for i, ch := range d.Challenges {
		ch.Tasks = append([]entity.Task(nil), ch.Tasks...)
		out.Challenges[i] = ch
	}
	return &out
}
