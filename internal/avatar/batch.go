package avatar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pagardi95/ironunicorn/internal/evolution"
	"github.com/pagardi95/ironunicorn/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const DefaultBatchDelay = time.Second

type assetSink interface {
	Put(ctx context.Context, level int, img Image) (ImageRef, error)
}

type Progress struct {
	Current int
	Total   int
	Level   int
	// Ref is empty when the level failed.
	Ref ImageRef
}

type BatchParams struct {
	Gender string
	// FromLevel and ToLevel default to the full 1..100 range.
	FromLevel int
	ToLevel   int
	// Delay between two requests, DefaultBatchDelay when zero.
	Delay      time.Duration
	Sink       assetSink
	OnProgress func(Progress)
}

// BatchReport is the final tally of a batch run. Err combines every per level failure.
type BatchReport struct {
	Total     int
	Generated int
	Failed    int
	Err       error
}

// RegenerateAll generates the avatar for every level in range, one at a time.
// Only one batch may run per resolver. Cancelling ctx stops it between levels.
func (r *Resolver) RegenerateAll(ctx context.Context, params BatchParams) (report BatchReport, err error) {
	if !r.batchRunning.CompareAndSwap(false, true) {
		return BatchReport{}, ErrBatchRunning
	}
	defer r.batchRunning.Store(false)

	if r.generator == nil {
		return BatchReport{}, errors.New("no image generator configured")
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "avatar.batch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from, to := params.FromLevel, params.ToLevel
	if from == 0 {
		from = evolution.MinLevel
	}
	if to == 0 {
		to = evolution.MaxLevel
	}
	from, to = evolution.ClampLevel(from), evolution.ClampLevel(to)
	if from > to {
		return BatchReport{}, fmt.Errorf("invalid level range %d..%d", from, to)
	}
	delay := params.Delay
	if delay <= 0 {
		delay = DefaultBatchDelay
	}

	report.Total = to - from + 1
	r.metrics.GaugeBatchProgress.Set(0)
	log.Infof("avatar batch started: levels %d..%d", from, to)

	for level := from; level <= to; level++ {
		if err := ctx.Err(); err != nil {
			log.Warnf("avatar batch cancelled at level %d", level)
			return report, err
		}

		current := level - from + 1
		ref, genErr := r.batchOne(ctx, level, params)
		if genErr != nil {
			report.Failed++
			report.Err = multierr.Append(report.Err, fmt.Errorf("level %d: %w", level, genErr))
		} else {
			report.Generated++
		}

		r.metrics.GaugeBatchProgress.Set(float64(current))
		if params.OnProgress != nil {
			params.OnProgress(Progress{Current: current, Total: report.Total, Level: level, Ref: ref})
		}

		if level < to {
			if err := r.sleep(ctx, delay); err != nil {
				log.Warnf("avatar batch cancelled after level %d", level)
				return report, err
			}
		}
	}

	log.Infof("avatar batch done: %d generated, %d failed", report.Generated, report.Failed)
	return report, nil
}

func (r *Resolver) batchOne(ctx context.Context, level int, params BatchParams) (ImageRef, error) {
	img, _, err := r.Generate(ctx, level, params.Gender)
	if err != nil {
		return "", err
	}
	if params.Sink == nil {
		return img.DataURI(), nil
	}
	ref, err := params.Sink.Put(ctx, level, img)
	if err != nil {
		return "", fmt.Errorf("store asset: %w", err)
	}
	return ref, nil
}
