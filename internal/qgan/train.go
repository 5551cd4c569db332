package qgan

import (
	"log/slog"

	"github.com/qgrad-ml/qgrad/internal/optim"
	"github.com/qgrad-ml/qgrad/internal/train"
)

// TrainOptions configures the alternating QGAN training loop.
type TrainOptions struct {
	// DiscSteps is the number of discriminator steps per round
	// (default: 50).
	DiscSteps int

	// GenSteps is the number of generator steps per round (default: 50).
	GenSteps int

	// Rounds is the number of discriminator/generator rounds (default: 1).
	Rounds int

	// LR is the gradient-descent learning rate (default: 0.1).
	LR float64

	// Logger receives progress records (default: slog.Default()).
	Logger *slog.Logger
}

// TrainResult is the outcome of a QGAN training run.
type TrainResult struct {
	GenWeights   []float64
	DiscWeights  []float64
	ProbRealTrue float64 // discriminator's belief in the real state
	ProbFakeTrue float64 // discriminator's belief in the generated state
}

// Train runs the alternating optimization: each round first trains the
// discriminator against the frozen generator, then trains the generator
// against the frozen discriminator. Both phases use plain gradient descent.
func (d *Demo) Train(genWeights, discWeights []float64, opts TrainOptions) (TrainResult, error) {
	if opts.DiscSteps == 0 {
		opts.DiscSteps = 50
	}
	if opts.GenSteps == 0 {
		opts.GenSteps = 50
	}
	if opts.Rounds == 0 {
		opts.Rounds = 1
	}
	if opts.LR == 0 {
		opts.LR = 0.1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	gen := append([]float64(nil), genWeights...)
	disc := append([]float64(nil), discWeights...)

	for round := 1; round <= opts.Rounds; round++ {
		discRes, err := train.Run(
			d.DiscriminatorObjective(gen),
			disc,
			optim.NewGradientDescent(optim.Config{LR: opts.LR}),
			train.Options{Steps: opts.DiscSteps, Logger: logger},
		)
		if err != nil {
			return TrainResult{}, err
		}
		disc = discRes.Params

		genRes, err := train.Run(
			d.GeneratorObjective(disc),
			gen,
			optim.NewGradientDescent(optim.Config{LR: opts.LR}),
			train.Options{Steps: opts.GenSteps, Logger: logger},
		)
		if err != nil {
			return TrainResult{}, err
		}
		gen = genRes.Params

		logger.Info("qgan round finished",
			slog.Int("round", round),
			slog.Float64("disc_cost", discRes.Cost),
			slog.Float64("gen_cost", genRes.Cost))
	}

	realProb, err := d.ProbRealTrue(disc)
	if err != nil {
		return TrainResult{}, err
	}
	fakeProb, err := d.ProbFakeTrue(gen, disc)
	if err != nil {
		return TrainResult{}, err
	}
	return TrainResult{
		GenWeights:   gen,
		DiscWeights:  disc,
		ProbRealTrue: realProb,
		ProbFakeTrue: fakeProb,
	}, nil
}
