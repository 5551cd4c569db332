// Package train runs gradient-descent training loops over differentiable
// objectives. It owns the parameter vector across iterations, delegates all
// math to the optimizer, and reports progress through structured logging.
package train

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/qgrad-ml/qgrad/internal/grad"
	"github.com/qgrad-ml/qgrad/internal/optim"
)

// Options configures a training run.
type Options struct {
	// Steps is the maximum number of optimizer steps (default: 100).
	Steps int

	// Tolerance stops the run early once the objective value drops below
	// it. Zero disables early stopping.
	Tolerance float64

	// LogEvery emits a progress record every N steps. Zero disables
	// progress logging; the start and end of the run are always logged.
	LogEvery int

	// Logger receives progress records (default: slog.Default()).
	Logger *slog.Logger
}

// Result is the outcome of a training run.
type Result struct {
	Params    []float64 // final parameter vector
	Cost      float64   // objective value at the final parameters
	Steps     int       // optimizer steps taken
	Converged bool      // whether the tolerance was reached
	RunID     string    // identifier stamped on the run's log records
}

// Run optimizes the objective from the given initial parameters and returns
// the final state. The initial slice is not modified.
func Run(obj grad.Objective, initial []float64, opt optim.Optimizer, opts Options) (Result, error) {
	if opts.Steps == 0 {
		opts.Steps = 100
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.NewString()
	logger = logger.With(slog.String("run_id", runID))

	params := make([]float64, len(initial))
	copy(params, initial)

	cost, err := obj.Value(params)
	if err != nil {
		return Result{}, fmt.Errorf("evaluating initial objective: %w", err)
	}
	logger.Info("training started",
		slog.Int("max_steps", opts.Steps),
		slog.Float64("learning_rate", opt.LR()),
		slog.Float64("initial_cost", cost))

	res := Result{RunID: runID}
	for step := 1; step <= opts.Steps; step++ {
		params, err = opt.Step(obj, params)
		if err != nil {
			return Result{}, fmt.Errorf("step %d: %w", step, err)
		}
		cost, err = obj.Value(params)
		if err != nil {
			return Result{}, fmt.Errorf("step %d: %w", step, err)
		}
		res.Steps = step
		if opts.LogEvery > 0 && step%opts.LogEvery == 0 {
			logger.Info("training progress",
				slog.Int("step", step),
				slog.Float64("cost", cost))
		}
		if opts.Tolerance > 0 && cost < opts.Tolerance {
			res.Converged = true
			break
		}
	}

	res.Params = params
	res.Cost = cost
	logger.Info("training finished",
		slog.Int("steps", res.Steps),
		slog.Float64("final_cost", res.Cost),
		slog.Bool("converged", res.Converged))
	return res, nil
}
