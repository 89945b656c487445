package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/soagroup/ecs"
	"go.uber.org/zap"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

// maxSingleRemovals caps per-round RemoveEntity calls; the rest go through RemoveSubset.
const maxSingleRemovals = 64

type workerResult struct {
	Rounds    int64
	Removed   int64
	Subsets   int64
	FinalRows int
	Samples   []time.Duration
}

// worker owns a single group for the whole run; groups are never shared.
type worker struct {
	id     int
	cfg    Config
	rng    *rand.Rand
	bodies *ecs.Group2[Position, Velocity]
	logger *zap.Logger
	result workerResult
}

func newWorker(id int, cfg Config, seed uint64, logger *zap.Logger) *worker {
	logger = logger.With(zap.Int("worker", id))
	w := &worker{
		id:     id,
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(seed, uint64(id))),
		logger: logger,
		bodies: ecs.NewGroup2[Position, Velocity](
			ecs.WithLogger(logger),
			ecs.WithCapacity(cfg.Entities),
		),
	}
	w.refill()
	return w
}

func (w *worker) refill() {
	for w.bodies.Size() < w.cfg.Entities {
		w.bodies.Add(
			Position{X: w.rng.Float64() * 1000, Y: w.rng.Float64() * 1000},
			Velocity{DX: w.rng.Float64() - 0.5, DY: w.rng.Float64() - 0.5},
		)
	}
}

// Run executes rounds until ctx is done.
func (w *worker) Run(ctx context.Context) (workerResult, error) {
	lastFrame := time.Now()
	for {
		select {
		case <-ctx.Done():
			w.result.FinalRows = w.bodies.Size()
			w.logger.Debug("worker finished", zap.Int64("rounds", w.result.Rounds))
			return w.result, nil
		default:
		}

		dt := time.Since(lastFrame).Seconds()
		lastFrame = time.Now()

		start := time.Now()
		if err := w.round(dt); err != nil {
			return w.result, fmt.Errorf("worker %d round %d: %w", w.id, w.result.Rounds, err)
		}
		w.result.Samples = append(w.result.Samples, time.Since(start))
		w.result.Rounds++
	}
}

// round integrates every body, cycles a subset out and back in, removes a
// fraction of rows and refills the group, then checks that it is consistent.
func (w *worker) round(dt float64) error {
	for _, row := range w.bodies.All() {
		pos, vel, err := row.Get()
		if err != nil {
			return err
		}
		pos.X += vel.DX * dt
		pos.Y += vel.DY * dt
	}

	size := w.bodies.Size()
	if count := int(float64(size) * w.cfg.SubsetFraction); count > 0 {
		idx := w.rng.IntN(size - count + 1)
		subset, err := w.bodies.Subset(idx, count)
		if err != nil {
			return fmt.Errorf("subset: %w", err)
		}
		if err := w.bodies.RemoveSubset(idx, count); err != nil {
			return fmt.Errorf("remove subset: %w", err)
		}
		if err := w.bodies.AddAll(subset); err != nil {
			return fmt.Errorf("merge subset: %w", err)
		}
		w.result.Subsets++
	}

	removals := int(float64(w.bodies.Size()) * w.cfg.RemoveFraction)
	single := min(removals, maxSingleRemovals)
	for i := 0; i < single; i++ {
		if err := w.bodies.Remove(w.rng.IntN(w.bodies.Size())); err != nil {
			return fmt.Errorf("remove: %w", err)
		}
	}
	if rest := removals - single; rest > 0 {
		idx := w.rng.IntN(w.bodies.Size() - rest + 1)
		if err := w.bodies.RemoveSubset(idx, rest); err != nil {
			return fmt.Errorf("remove range: %w", err)
		}
	}
	w.result.Removed += int64(removals)

	w.refill()
	return w.bodies.Untyped().Validate()
}
