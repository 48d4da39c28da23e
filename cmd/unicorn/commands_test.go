package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pagardi95/ironunicorn/internal/avatar"
	"github.com/pagardi95/ironunicorn/internal/progression"
	"github.com/pagardi95/ironunicorn/internal/storage"
	"github.com/pagardi95/ironunicorn/internal/telemetry/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestApp(t *testing.T, dir string) (*app, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	store, err := storage.Open(ctx, storage.OpenParams{Backend: storage.BackendFile, Path: dir})
	require.NoError(t, err)

	m := metrics.NewTestManager()
	static, err := avatar.NewStaticStore(avatar.StrategyPerLevel, "https://cdn.example.com/unicorns")
	require.NoError(t, err)
	resolver, err := avatar.NewResolver(avatar.NewResolverParams{
		Mode:    avatar.ModeStatic,
		Static:  static,
		Metrics: m,
	})
	require.NoError(t, err)

	engine, err := progression.NewEngine(ctx, progression.NewEngineParams{
		Store:   store,
		Avatars: resolver,
		Metrics: m,
		Now: func() time.Time {
			return time.Date(2026, time.April, 1, 7, 0, 0, 0, time.UTC)
		},
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &app{
		engine:     engine,
		resolver:   resolver,
		assetDir:   dir,
		batchDelay: time.Millisecond,
		out:        out,
		in:         strings.NewReader(""),
	}, out
}

func runCmd(t *testing.T, a *app, out *bytes.Buffer, args ...string) string {
	t.Helper()
	out.Reset()
	require.NoError(t, a.run(context.Background(), args))
	a.engine.Wait()
	return out.String()
}

func TestApp_Flow(t *testing.T) {
	dir := t.TempDir()
	a, out := newTestApp(t, dir)

	assert.Contains(t, runCmd(t, a, out, "status"), "no unicorn yet")

	res := runCmd(t, a, out, "onboard", "-bodyweight", "100", "-squat", "80", "-bench", "60", "-deadlift", "100", "-name", "Sparkle")
	assert.Contains(t, res, "recommended plan: Hypertrophy Pro (hypertrophy-max)")
	assert.NotContains(t, res, "strong start")

	res = runCmd(t, a, out, "workout", "-rate", "just_right")
	assert.Contains(t, res, "Squats: 4 x 8-10")
	assert.Contains(t, res, "+125 xp (total 125)")
	assert.Contains(t, res, "challenge completed: c1")
	assert.Contains(t, res, "LEVEL UP! level 2, The Foal")

	a.in = strings.NewReader("n\n")
	assert.Contains(t, runCmd(t, a, out, "quest", "q-cardio"), "quest not confirmed")
	a.in = strings.NewReader("yes\n")
	assert.Contains(t, runCmd(t, a, out, "quest", "q-cardio"), "+40 xp (total 165)")
	assert.Contains(t, runCmd(t, a, out, "quest"), "q-sleep Stable Rest")

	assert.Contains(t, runCmd(t, a, out, "drill", "d-pushups"), "+20 xp (total 185)")
	assert.Contains(t, runCmd(t, a, out, "challenge", "c1"), "nothing changed")

	res = runCmd(t, a, out, "plans")
	assert.Contains(t, res, "hypertrophy-max Hypertrophy Pro: 12 weeks, hypertrophy, min score 1.5 [unlocked, recommended]")
	assert.Contains(t, res, "iron-legend Iron Legend")
	assert.Contains(t, res, "[locked]")

	err := a.run(context.Background(), []string{"plan", "iron-legend"})
	assert.ErrorIs(t, err, progression.ErrPlanLocked)
	runCmd(t, a, out, "plan", "hypertrophy-max")

	res = runCmd(t, a, out, "status")
	assert.Contains(t, res, "Sparkle, level 2 (The Foal)")
	assert.Contains(t, res, "xp 185, streak 1, workouts 1")
	assert.Contains(t, res, "plan: hypertrophy-max")
	assert.Contains(t, res, "avatar: https://cdn.example.com/unicorns/level_2.png")
	assert.Contains(t, res, "[x] c1 First Training")

	// progress survives a restart
	b, bOut := newTestApp(t, dir)
	assert.Contains(t, runCmd(t, b, bOut, "status"), "xp 185")

	b.in = strings.NewReader("\n")
	assert.Contains(t, runCmd(t, b, bOut, "reset"), "reset cancelled")
	assert.Contains(t, runCmd(t, b, bOut, "reset", "-yes"), "progress reset")
	assert.Contains(t, runCmd(t, b, bOut, "status"), "no unicorn yet")
}

func TestApp_Errors(t *testing.T) {
	a, _ := newTestApp(t, t.TempDir())
	ctx := context.Background()

	assert.ErrorIs(t, a.run(ctx, nil), errUsage)
	assert.ErrorIs(t, a.run(ctx, []string{"fly"}), errUsage)
	assert.ErrorIs(t, a.run(ctx, []string{"challenge"}), errUsage)
	assert.ErrorIs(t, a.run(ctx, []string{"workout"}), progression.ErrOnboardingRequired)
	assert.ErrorIs(t, a.run(ctx, []string{"onboard", "-bodyweight", "10"}), progression.ErrInvalidEvent)
	assert.ErrorIs(t, a.run(ctx, []string{"onboard", "-nope"}), errUsage)
	a.engine.Wait()
}
