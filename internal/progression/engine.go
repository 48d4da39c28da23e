package progression

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pagardi95/ironunicorn/internal/avatar"
	"github.com/pagardi95/ironunicorn/internal/catalog"
	"github.com/pagardi95/ironunicorn/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidEvent  = errors.New("invalid event")
	ErrSaveFailed    = errors.New("save stats")
	ErrQuestDeclined = errors.New("quest not confirmed")
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progression_test

type statsStore interface {
	Load(ctx context.Context) (*UserStats, error)
	Save(ctx context.Context, stats UserStats) error
}

type avatarResolver interface {
	Resolve(ctx context.Context, level int, opts avatar.Options) avatar.ImageRef
}

type NewEngineParams struct {
	Store   statsStore
	Avatars avatarResolver
	Metrics *metrics.Manager
	// Now defaults to time.Now.
	Now func() time.Time
}

// Engine owns the live UserStats. Transitions are serialized, every one of them
// starts from the latest committed snapshot.
type Engine struct {
	mu    sync.Mutex
	stats UserStats

	store   statsStore
	avatars avatarResolver
	metrics *metrics.Manager
	now     func() time.Time

	refreshes sync.WaitGroup
}

// NewEngine loads the saved stats, or starts from defaults when there are none.
func NewEngine(ctx context.Context, params NewEngineParams) (*Engine, error) {
	if params.Store == nil {
		return nil, errors.New("stats store is required")
	}
	if params.Metrics == nil {
		return nil, errors.New("metrics manager is required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}

	loaded, err := params.Store.Load(ctx)
	if err != nil {
		params.Metrics.CounterPersistenceErrors.WithLabelValues("load").Inc()
		return nil, fmt.Errorf("load stats: %w", err)
	}

	stats := NewUserStats()
	if loaded != nil {
		stats = loaded.Clone()
	} else {
		log.Debugln("no saved stats found, starting fresh")
	}

	e := &Engine{
		stats:   stats,
		store:   params.Store,
		avatars: params.Avatars,
		metrics: params.Metrics,
		now:     params.Now,
	}
	e.updateGauges(stats)
	return e, nil
}

// Snapshot returns a deep copy of the current stats.
func (e *Engine) Snapshot() UserStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats.Clone()
}

// Dispatch validates and applies the event, persists the result and, when the
// transition asks for it, refreshes the avatar in the background.
// A failed save still commits the new stats in memory, the returned error wraps ErrSaveFailed.
func (e *Engine) Dispatch(ctx context.Context, ev Event) (Outcome, error) {
	if err := ev.Validate(); err != nil {
		e.metrics.CounterRejectedEvents.WithLabelValues(string(ev.Kind())).Inc()
		return Outcome{Stats: e.Snapshot()}, fmt.Errorf("%w: %s: %w", ErrInvalidEvent, ev.Kind(), err)
	}
	if wf, ok := ev.(WorkoutFinished); ok && wf.At.IsZero() {
		wf.At = e.now()
		ev = wf
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := Precheck(e.stats, ev); err != nil {
		e.metrics.CounterRejectedEvents.WithLabelValues(string(ev.Kind())).Inc()
		return Outcome{Stats: e.stats.Clone()}, err
	}

	out, err := Apply(e.stats, ev)
	if err != nil {
		return Outcome{Stats: e.stats.Clone()}, err
	}
	if !out.Changed {
		log.Tracef("event %s was a no-op", ev.Kind())
		return out, nil
	}

	var saveErr error
	if err := e.store.Save(ctx, out.Stats); err != nil {
		e.metrics.CounterPersistenceErrors.WithLabelValues("save").Inc()
		log.Errorf("save stats after %s: %s", ev.Kind(), err)
		saveErr = fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	e.stats = out.Stats
	e.metrics.CounterTransitions.WithLabelValues(string(ev.Kind())).Inc()
	e.updateGauges(out.Stats)

	if out.LeveledUp {
		log.Infof("level up: %d", out.Stats.Level)
	}
	for _, id := range out.Completed {
		log.Infof("challenge completed: %s", id)
	}

	if out.RefreshAvatar && e.avatars != nil {
		e.scheduleRefresh(ctx, out.Stats.Level, out.Stats.Gender)
	}

	out.Stats = out.Stats.Clone()
	return out, saveErr
}

func (e *Engine) updateGauges(stats UserStats) {
	e.metrics.GaugeLevel.Set(float64(stats.Level))
	e.metrics.GaugeXP.Set(float64(stats.XP))
}

// scheduleRefresh resolves the avatar off the caller's path and merges it back
// through an AvatarResolved event. Must be called with e.mu held.
func (e *Engine) scheduleRefresh(ctx context.Context, level int, gender Gender) {
	refreshCtx := context.WithoutCancel(ctx)
	e.refreshes.Add(1)
	go func() {
		defer e.refreshes.Done()
		ref := e.avatars.Resolve(refreshCtx, level, avatar.Options{Gender: string(gender)})
		if ref == "" {
			log.Warnf("no avatar resolved for level %d", level)
			return
		}
		if _, err := e.Dispatch(refreshCtx, AvatarResolved{Level: level, Ref: ref}); err != nil {
			log.Errorf("attach avatar for level %d: %s", level, err)
		}
	}()
}

// Wait blocks until all background avatar refreshes are merged.
func (e *Engine) Wait() {
	e.refreshes.Wait()
}

// RefreshAvatar resolves the avatar for the current level right away and attaches it.
func (e *Engine) RefreshAvatar(ctx context.Context, force bool) (avatar.ImageRef, error) {
	if e.avatars == nil {
		return "", errors.New("no avatar resolver configured")
	}
	snap := e.Snapshot()
	ref := e.avatars.Resolve(ctx, snap.Level, avatar.Options{
		ForceGenerate: force,
		Gender:        string(snap.Gender),
	})
	if ref == "" {
		return "", nil
	}
	if _, err := e.Dispatch(ctx, AvatarResolved{Level: snap.Level, Ref: ref}); err != nil {
		return ref, err
	}
	return ref, nil
}

// FinishSession closes the workout session and dispatches its xp.
func (e *Engine) FinishSession(ctx context.Context, session *catalog.Session) (Outcome, error) {
	if err := Precheck(e.Snapshot(), WorkoutFinished{}); err != nil {
		return Outcome{Stats: e.Snapshot()}, err
	}
	xp, err := session.Finish()
	if err != nil {
		return Outcome{Stats: e.Snapshot()}, err
	}
	return e.Dispatch(ctx, WorkoutFinished{XPGained: xp})
}

// ConfirmQuest asks confirm before granting the quest xp. Nothing is verified,
// the player's word is taken.
func (e *Engine) ConfirmQuest(ctx context.Context, questID string, confirm func(catalog.Quest) bool) (Outcome, error) {
	quest, err := catalog.QuestByID(questID)
	if err != nil {
		return Outcome{Stats: e.Snapshot()}, err
	}
	if confirm == nil || !confirm(quest) {
		return Outcome{Stats: e.Snapshot()}, ErrQuestDeclined
	}
	return e.Dispatch(ctx, QuestConfirmed{QuestID: quest.ID, XP: quest.XP})
}

func (e *Engine) LogDrill(ctx context.Context, drillID string) (Outcome, error) {
	drill, err := catalog.DrillByID(drillID)
	if err != nil {
		return Outcome{Stats: e.Snapshot()}, err
	}
	return e.Dispatch(ctx, ExerciseLogged{
		BodyPart:     drill.BodyPart,
		BoostPercent: drill.BoostPercent,
		XP:           drill.XP,
	})
}
