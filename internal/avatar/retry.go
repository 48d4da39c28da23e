package avatar

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

// State of a single resolve call.
type State int

const (
	StateIdle State = iota
	StateRequesting
	StateRetry
	StateSuccess
	StateFallback
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequesting:
		return "requesting"
	case StateRetry:
		return "retry"
	case StateSuccess:
		return "success"
	case StateFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

func (s State) Terminal() bool {
	return s == StateSuccess || s == StateFallback
}

type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 4,
		BaseDelay:   3 * time.Second,
		Multiplier:  2,
	}
}

// Delays returns the wait before each retry, MaxAttempts-1 entries.
func (p RetryPolicy) Delays() []time.Duration {
	if p.MaxAttempts <= 1 {
		return nil
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = p.Multiplier
	b.RandomizationFactor = 0
	b.MaxInterval = time.Duration(1<<62 - 1)
	b.MaxElapsedTime = 0
	b.Reset()

	delays := make([]time.Duration, 0, p.MaxAttempts-1)
	for i := 0; i < p.MaxAttempts-1; i++ {
		delays = append(delays, b.NextBackOff())
	}
	return delays
}

// Transition is reported on every state change.
type Transition struct {
	From    State
	To      State
	Attempt int
	Err     error
}

type sleepFunc func(ctx context.Context, d time.Duration) error

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryMachine drives one generation through IDLE -> REQUESTING -> {SUCCESS | RETRY(n) -> REQUESTING | FALLBACK}.
type retryMachine struct {
	policy  RetryPolicy
	delays  []time.Duration
	sleep   sleepFunc
	observe func(Transition)

	state   State
	attempt int
	lastErr error
}

func newRetryMachine(policy RetryPolicy, sleep sleepFunc, observe func(Transition)) *retryMachine {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if sleep == nil {
		sleep = sleepCtx
	}
	return &retryMachine{
		policy:  policy,
		delays:  policy.Delays(),
		sleep:   sleep,
		observe: observe,
		state:   StateIdle,
	}
}

func (m *retryMachine) moveTo(to State, err error) {
	if m.observe != nil {
		m.observe(Transition{From: m.state, To: to, Attempt: m.attempt, Err: err})
	}
	m.state = to
}

// run returns the image on SUCCESS, or the last error on FALLBACK.
func (m *retryMachine) run(ctx context.Context, attempt func(ctx context.Context) (Image, error)) (Image, State, error) {
	var img Image
	for !m.state.Terminal() {
		switch m.state {
		case StateIdle:
			m.attempt = 1
			m.moveTo(StateRequesting, nil)

		case StateRequesting:
			var err error
			img, err = attempt(ctx)
			if err == nil {
				m.lastErr = nil
				m.moveTo(StateSuccess, nil)
				continue
			}
			m.lastErr = err
			if !isRetryable(err) || m.attempt >= m.policy.MaxAttempts || ctx.Err() != nil {
				m.moveTo(StateFallback, err)
				continue
			}
			m.moveTo(StateRetry, err)

		case StateRetry:
			delay := m.delays[m.attempt-1]
			log.Debugf("image generation attempt %d failed, retrying in %s: %s", m.attempt, delay, m.lastErr)
			if err := m.sleep(ctx, delay); err != nil {
				m.lastErr = err
				m.moveTo(StateFallback, err)
				continue
			}
			m.attempt++
			m.moveTo(StateRequesting, nil)
		}
	}

	if m.state == StateSuccess {
		return img, m.state, nil
	}
	return Image{}, m.state, m.lastErr
}
