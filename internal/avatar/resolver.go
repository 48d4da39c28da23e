package avatar

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pagardi95/ironunicorn/internal/evolution"
	"github.com/pagardi95/ironunicorn/internal/telemetry/metrics"
	"github.com/pagardi95/ironunicorn/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Mode string

const (
	ModeStatic   Mode = "static"
	ModeGenerate Mode = "generate"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=avatar_test

type generator interface {
	Generate(ctx context.Context, prompt string) (Image, error)
}

type limiter interface {
	Wait(ctx context.Context) error
}

type imageCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

type assetStore interface {
	Lookup(level int, gender string) (ImageRef, bool)
	Store(ctx context.Context, level int, gender string, img Image) (ImageRef, error)
}

type NewResolverParams struct {
	Mode      Mode
	Static    *StaticStore
	Generator generator
	// Limiter, Cache and Assets are optional. Cache holds references only, so
	// generated payloads are kept across runs only when Assets is set.
	Limiter limiter
	Cache   imageCache
	Assets  assetStore
	Policy  RetryPolicy
	Metrics *metrics.Manager
}

// Resolver decides which image represents a level. Static references are the
// default and the fallback for every failed generation.
type Resolver struct {
	mode      Mode
	static    *StaticStore
	generator generator
	limiter   limiter
	cache     imageCache
	assets    assetStore
	policy    RetryPolicy
	metrics   *metrics.Manager
	sleep     sleepFunc

	batchRunning atomic.Bool
}

func NewResolver(params NewResolverParams) (*Resolver, error) {
	if params.Static == nil {
		return nil, errors.New("static store is required")
	}
	if params.Metrics == nil {
		return nil, errors.New("metrics manager is required")
	}
	switch params.Mode {
	case ModeStatic, ModeGenerate:
	default:
		return nil, fmt.Errorf("unknown avatar mode: %s", params.Mode)
	}
	if params.Mode == ModeGenerate && params.Generator == nil {
		return nil, errors.New("generate mode needs an image generator")
	}
	if params.Policy.MaxAttempts == 0 {
		params.Policy = DefaultRetryPolicy()
	}

	return &Resolver{
		mode:      params.Mode,
		static:    params.Static,
		generator: params.Generator,
		limiter:   params.Limiter,
		cache:     params.Cache,
		assets:    params.Assets,
		policy:    params.Policy,
		metrics:   params.Metrics,
		sleep:     sleepCtx,
	}, nil
}

// WithSleep replaces the backoff sleep, used to run retries without real waiting.
func (r *Resolver) WithSleep(sleep func(ctx context.Context, d time.Duration) error) *Resolver {
	r.sleep = sleep
	return r
}

func (r *Resolver) Static(level int) ImageRef {
	return r.static.Ref(level)
}

func cacheKey(level int, gender string) string {
	return fmt.Sprintf("avatar:%s:%d", gender, level)
}

// Resolve never fails: any generation problem ends in the static reference for the level.
func (r *Resolver) Resolve(ctx context.Context, level int, opts Options) ImageRef {
	level = evolution.ClampLevel(level)
	static := r.static.Ref(level)

	if r.generator == nil || (r.mode == ModeStatic && !opts.ForceGenerate) {
		r.metrics.CounterAvatarResolutions.WithLabelValues("static").Inc()
		return static
	}

	key := cacheKey(level, opts.Gender)
	if !opts.ForceGenerate {
		if ref, ok := r.lookup(key, level, opts.Gender); ok {
			r.metrics.CounterCacheHits.Inc()
			r.metrics.CounterAvatarResolutions.WithLabelValues("cached").Inc()
			return ref
		}
	}

	img, _, err := r.Generate(ctx, level, opts.Gender)
	if err != nil {
		log.Warnf("avatar generation for level %d failed, using static asset: %s", level, err)
		r.metrics.CounterAvatarResolutions.WithLabelValues("fallback").Inc()
		return static
	}

	r.metrics.CounterAvatarResolutions.WithLabelValues("generated").Inc()
	return r.keep(ctx, key, level, opts.Gender, img)
}

func (r *Resolver) lookup(key string, level int, gender string) (ImageRef, bool) {
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			return ImageRef(cached), true
		}
	}
	if r.assets == nil {
		return "", false
	}
	ref, ok := r.assets.Lookup(level, gender)
	if !ok {
		return "", false
	}
	r.remember(key, ref)
	return ref, true
}

// keep stores the payload and returns its reference. Without an asset store,
// or when storing fails, the inline data URI is returned and nothing is cached.
func (r *Resolver) keep(ctx context.Context, key string, level int, gender string, img Image) ImageRef {
	if r.assets == nil {
		return img.DataURI()
	}
	ref, err := r.assets.Store(ctx, level, gender, img)
	if err != nil {
		log.Warnf("avatar for level %d not stored: %s", level, err)
		return img.DataURI()
	}
	r.remember(key, ref)
	return ref
}

func (r *Resolver) remember(key string, ref ImageRef) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(key, []byte(ref)); err != nil {
		log.Warnf("avatar reference not cached: %s", err)
	}
}

// Generate runs the retry state machine for one level and returns the payload.
// The returned state is StateSuccess or StateFallback.
func (r *Resolver) Generate(ctx context.Context, level int, gender string) (_ Image, _ State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "avatar.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("level", level))

	if r.generator == nil {
		return Image{}, StateFallback, errors.New("no image generator configured")
	}

	start := time.Now()
	defer func() {
		r.metrics.HistGenerationDuration.Observe(time.Since(start).Seconds())
	}()

	prompt := BuildPrompt(level, gender)
	machine := newRetryMachine(r.policy, r.sleep, func(t Transition) {
		log.Tracef("avatar level %d: %s -> %s (attempt %d)", level, t.From, t.To, t.Attempt)
	})

	img, state, err := machine.run(ctx, func(ctx context.Context) (Image, error) {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				// a broken limiter must not block generation
				log.Warnf("avatar rate limiter: %s", err)
			}
		}
		img, err := r.generator.Generate(ctx, prompt)
		if err != nil {
			r.metrics.CounterGenerationAttempts.WithLabelValues(string(ClassOf(err))).Inc()
			return Image{}, err
		}
		r.metrics.CounterGenerationAttempts.WithLabelValues("ok").Inc()
		return img, nil
	})
	span.SetAttributes(attribute.String("state", state.String()))
	return img, state, err
}
