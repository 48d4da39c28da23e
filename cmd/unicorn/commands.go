package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pagardi95/ironunicorn/internal/avatar"
	"github.com/pagardi95/ironunicorn/internal/catalog"
	"github.com/pagardi95/ironunicorn/internal/evolution"
	"github.com/pagardi95/ironunicorn/internal/progression"
	"github.com/pagardi95/ironunicorn/internal/strength"

	log "github.com/sirupsen/logrus"
)

var errUsage = errors.New("invalid usage")

type app struct {
	engine     *progression.Engine
	resolver   *avatar.Resolver
	assetDir   string
	batchDelay time.Duration
	out        io.Writer
	in         io.Reader
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "status":
		return a.status()
	case "onboard":
		return a.onboard(ctx, rest)
	case "workout":
		return a.workout(ctx, rest)
	case "challenge":
		id, err := singleArg(cmd, rest)
		if err != nil {
			return err
		}
		return a.report(a.engine.Dispatch(ctx, progression.ChallengeCompleted{ChallengeID: id}))
	case "quest":
		return a.quest(ctx, rest)
	case "drill", "exercise":
		id, err := singleArg(cmd, rest)
		if err != nil {
			return err
		}
		return a.report(a.engine.LogDrill(ctx, id))
	case "plans":
		return a.plans()
	case "plan":
		id, err := singleArg(cmd, rest)
		if err != nil {
			return err
		}
		return a.report(a.engine.Dispatch(ctx, progression.PlanSelected{PlanID: id}))
	case "avatar":
		return a.refreshAvatar(ctx, rest)
	case "regen-all":
		return a.regenAll(ctx, rest)
	case "reset":
		return a.reset(ctx, rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func singleArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s takes exactly one id", errUsage, cmd)
	}
	return args[0], nil
}

// report prints what a transition changed. A failed save is printed as a warning,
// the progress is still kept for this run.
func (a *app) report(out progression.Outcome, err error) error {
	if errors.Is(err, progression.ErrSaveFailed) {
		fmt.Fprintf(a.out, "warning: progress not saved: %s\n", err)
	} else if err != nil {
		return err
	}

	if !out.Changed {
		fmt.Fprintln(a.out, "nothing changed")
		return nil
	}
	if out.XPGained > 0 {
		fmt.Fprintf(a.out, "+%d xp (total %d)\n", out.XPGained, out.Stats.XP)
	}
	for _, id := range out.Completed {
		fmt.Fprintf(a.out, "challenge completed: %s\n", id)
	}
	if out.LeveledUp {
		stage := evolution.Lookup(out.Stats.Level)
		fmt.Fprintf(a.out, "LEVEL UP! level %d, %s\n", out.Stats.Level, stage.Name)
	}
	return nil
}

func (a *app) status() error {
	stats := a.engine.Snapshot()
	if !stats.OnboardingComplete {
		fmt.Fprintln(a.out, "no unicorn yet, run: unicorn onboard -bodyweight <kg> -squat <kg> -bench <kg> -deadlift <kg>")
		return nil
	}

	stage := evolution.Lookup(stats.Level)
	name := stats.DisplayName
	if name == "" {
		name = "Unicorn"
	}
	fmt.Fprintf(a.out, "%s, level %d (%s): %s\n", name, stats.Level, stage.Name, stage.Description)
	fmt.Fprintf(a.out, "xp %d, streak %d, workouts %d\n", stats.XP, stats.Streak, stats.TotalWorkouts)
	fmt.Fprintf(a.out, "next milestone: level %d (%.0f%%)\n", evolution.NextMilestone(stats.Level), evolution.MilestoneProgress(stats.Level))
	fmt.Fprintf(a.out, "evolution: chest %d%%, arms %d%%, legs %d%%, horn %d%%\n",
		stats.Evolution.Chest, stats.Evolution.Arms, stats.Evolution.Legs, stats.Evolution.Horn)
	fmt.Fprintf(a.out, "physique: %s, %s\n", strength.PhysiqueFor(stats.Level), strength.PaletteFor(stats.Level))
	fmt.Fprintf(a.out, "strength score: %.2f\n", stats.StrengthScore())
	if stats.SelectedPlanID != "" {
		fmt.Fprintf(a.out, "plan: %s\n", stats.SelectedPlanID)
	}
	if stats.AvatarURL != "" {
		ref := string(stats.AvatarURL)
		if stats.AvatarURL.IsInline() {
			ref = "inline image"
		}
		fmt.Fprintf(a.out, "avatar: %s\n", ref)
	}

	fmt.Fprintln(a.out, "challenges:")
	for _, c := range stats.Challenges {
		mark := " "
		if c.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.out, "  [%s] %s %s (+%d xp)\n", mark, c.ID, c.Title, c.XPReward)
	}
	return nil
}

func (a *app) onboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("onboard", flag.ContinueOnError)
	fs.SetOutput(a.out)
	bodyweight := fs.Float64("bodyweight", 0, "bodyweight in kg")
	squat := fs.Float64("squat", 0, "squat 1RM in kg")
	bench := fs.Float64("bench", 0, "bench press 1RM in kg")
	deadlift := fs.Float64("deadlift", 0, "deadlift 1RM in kg")
	gender := fs.String("gender", string(progression.GenderMale), "male | female")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	lifts := strength.Lifts{
		Bodyweight: *bodyweight,
		Squat:      *squat,
		Bench:      *bench,
		Deadlift:   *deadlift,
	}
	out, err := a.engine.Dispatch(ctx, progression.OnboardingCompleted{
		Lifts:       lifts,
		Gender:      progression.Gender(strings.ToLower(*gender)),
		DisplayName: *name,
	})
	if err := a.report(out, err); err != nil {
		return err
	}

	if out.Stats.IsStrongStart {
		fmt.Fprintf(a.out, "strong start! you begin at level %d\n", out.Stats.Level)
	}
	if plan, ok := strength.Recommend(lifts, catalog.Plans()); ok {
		fmt.Fprintf(a.out, "recommended plan: %s (%s)\n", plan.Title, plan.ID)
	}
	return nil
}

func (a *app) workout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("workout", flag.ContinueOnError)
	fs.SetOutput(a.out)
	planID := fs.String("plan", "", "plan id, the selected plan by default")
	day := fs.Int("day", 1, "plan day")
	rate := fs.String("rate", "", "difficulty for every exercise: too_easy | just_right | too_hard")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	stats := a.engine.Snapshot()
	if *planID == "" {
		*planID = stats.SelectedPlanID
	}
	if *planID == "" {
		*planID = catalog.Plans()[0].ID
	}
	plan, err := catalog.PlanByID(*planID)
	if err != nil {
		return err
	}
	workoutDay, err := plan.Day(*day)
	if err != nil {
		return err
	}

	session := catalog.StartSession(workoutDay)
	for _, ex := range workoutDay.Exercises {
		if _, err := session.Toggle(ex.ID); err != nil {
			return err
		}
		if *rate != "" {
			if err := session.Rate(ex.ID, catalog.Difficulty(*rate)); err != nil {
				return err
			}
		}
		fmt.Fprintf(a.out, "  %s: %d x %s\n", ex.Name, ex.Sets, ex.Reps)
	}
	log.Debugf("finishing %s day %d", plan.ID, workoutDay.Day)

	return a.report(a.engine.FinishSession(ctx, session))
}

func (a *app) quest(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("quest", flag.ContinueOnError)
	fs.SetOutput(a.out)
	yes := fs.Bool("yes", false, "confirm without asking")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(a.out, "quests:")
		for _, q := range catalog.Quests() {
			fmt.Fprintf(a.out, "  %s %s: %s (+%d xp)\n", q.ID, q.Title, q.Description, q.XP)
		}
		return nil
	}

	out, err := a.engine.ConfirmQuest(ctx, fs.Arg(0), func(q catalog.Quest) bool {
		if *yes {
			return true
		}
		return a.confirm(fmt.Sprintf("did you really do %q (+%d xp)?", q.Title, q.XP))
	})
	if errors.Is(err, progression.ErrQuestDeclined) {
		fmt.Fprintln(a.out, "quest not confirmed")
		return nil
	}
	return a.report(out, err)
}

func (a *app) plans() error {
	stats := a.engine.Snapshot()
	recommended, hasRecommended := strength.Recommend(stats.Lifts, catalog.Plans())
	for _, p := range catalog.Plans() {
		state := "locked"
		if strength.MeetsRequirement(stats.Lifts, p) {
			state = "unlocked"
		}
		if hasRecommended && p.ID == recommended.ID {
			state += ", recommended"
		}
		if p.ID == stats.SelectedPlanID {
			state += ", selected"
		}
		fmt.Fprintf(a.out, "%s %s: %d weeks, %s, min score %.1f [%s]\n",
			p.ID, p.Title, p.DurationWeeks, p.Focus, p.MinStrengthScore, state)
	}
	return nil
}

func (a *app) refreshAvatar(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("avatar", flag.ContinueOnError)
	fs.SetOutput(a.out)
	force := fs.Bool("force", false, "generate a new image even in static mode")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	ref, err := a.engine.RefreshAvatar(ctx, *force)
	if err != nil && !errors.Is(err, progression.ErrSaveFailed) {
		return err
	}
	if ref.IsInline() {
		fmt.Fprintf(a.out, "avatar: inline image, %d bytes\n", len(ref))
	} else {
		fmt.Fprintf(a.out, "avatar: %s\n", ref)
	}
	return nil
}

func (a *app) regenAll(ctx context.Context, args []string) error {
	stats := a.engine.Snapshot()

	fs := flag.NewFlagSet("regen-all", flag.ContinueOnError)
	fs.SetOutput(a.out)
	from := fs.Int("from", evolution.MinLevel, "first level")
	to := fs.Int("to", evolution.MaxLevel, "last level")
	gender := fs.String("gender", string(stats.Gender), "male | female")
	dir := fs.String("out", a.assetDir, "directory for level_{n} images")
	delay := fs.Duration("delay", a.batchDelay, "pause between two levels")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	sink, err := avatar.NewDiskSink(*dir)
	if err != nil {
		return err
	}

	report, err := a.resolver.RegenerateAll(ctx, avatar.BatchParams{
		Gender:    *gender,
		FromLevel: *from,
		ToLevel:   *to,
		Delay:     *delay,
		Sink:      sink,
		OnProgress: func(p avatar.Progress) {
			if p.Ref == "" {
				fmt.Fprintf(a.out, "[%d/%d] level %d failed\n", p.Current, p.Total, p.Level)
				return
			}
			fmt.Fprintf(a.out, "[%d/%d] level %d: %s\n", p.Current, p.Total, p.Level, p.Ref)
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "done: %d generated, %d failed of %d\n", report.Generated, report.Failed, report.Total)
	if report.Err != nil {
		log.Warnf("regen-all failures: %s", report.Err)
	}
	return nil
}

func (a *app) reset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	fs.SetOutput(a.out)
	yes := fs.Bool("yes", false, "reset without asking")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if !*yes && !a.confirm("reset all progress?") {
		fmt.Fprintln(a.out, "reset cancelled")
		return nil
	}

	if err := a.report(a.engine.Dispatch(ctx, progression.Reset{})); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "progress reset")
	return nil
}

func (a *app) confirm(question string) bool {
	fmt.Fprintf(a.out, "%s [y/N] ", question)
	scanner := bufio.NewScanner(a.in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
