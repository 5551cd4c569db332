// Package main provides the qgrad CLI: small training demos for the
// differentiable circuit engine.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/qgrad-ml/qgrad/internal/circuit"
	"github.com/qgrad-ml/qgrad/internal/config"
	"github.com/qgrad-ml/qgrad/internal/grad"
	"github.com/qgrad-ml/qgrad/internal/optim"
	"github.com/qgrad-ml/qgrad/internal/qgan"
	"github.com/qgrad-ml/qgrad/internal/sim"
	"github.com/qgrad-ml/qgrad/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	root := &cobra.Command{
		Use:           "qgrad",
		Short:         "Differentiable quantum circuit demos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "path to a YAML training config")

	root.AddCommand(versionCmd(), rotateCmd(), qganCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("qgrad %s\n", version)
		},
	}
}

func loadConfig(cmd *cobra.Command) (config.Training, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// rotateCmd optimizes a two-rotation circuit toward a target expectation
// value, with a quadratic penalty on a third, purely classical weight.
func rotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Train a qubit-rotation circuit toward a target expectation value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cost, err := rotationCost(cfg.Target)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(cfg.Seed))
			initial := []float64{rng.Float64(), rng.Float64(), rng.Float64()}
			res, err := train.Run(cost, initial,
				optim.NewGradientDescent(optim.Config{LR: cfg.LearningRate}),
				train.Options{Steps: cfg.Steps, Tolerance: cfg.Tolerance, LogEvery: 10},
			)
			if err != nil {
				return err
			}
			fmt.Printf("final cost: %.3g after %d steps (converged: %v)\n",
				res.Cost, res.Steps, res.Converged)
			fmt.Printf("weights: %.6f %.6f %.6f\n", res.Params[0], res.Params[1], res.Params[2])
			return nil
		},
	}
}

// rotationCost builds cost(w) = (circuit(w0, w1) - target)^2 + w2^2 over an
// RX/RY circuit measuring Pauli-Z. The third weight never enters the
// circuit; its gradient flows entirely through the classical penalty.
func rotationCost(target float64) (grad.Objective, error) {
	c, err := circuit.NewBuilder(1).
		RX(0, 0).
		RY(1, 0).
		Slots(3).
		Build(circuit.PauliZObs(0))
	if err != nil {
		return nil, err
	}
	d := grad.New(sim.New())
	return grad.Chain(
		grad.FromCircuit(d, c),
		func(y float64, params []float64) float64 {
			delta := y - target
			return delta*delta + params[2]*params[2]
		},
		func(y float64, params []float64) (float64, []float64) {
			return 2 * (y - target), []float64{0, 0, 2 * params[2]}
		},
	), nil
}

// qganCmd runs the quantum GAN demo: a discriminator learns to separate a
// fixed real state from a generated one, then the generator learns to fool
// it.
func qganCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qgan",
		Short: "Train the quantum GAN demo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			demo, err := qgan.New(grad.New(sim.New()), math.Pi/6, math.Pi/2, math.Pi/7)
			if err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(cfg.Seed))
			res, err := demo.Train(
				qgan.InitGenWeights(rng),
				qgan.InitDiscWeights(rng),
				qgan.TrainOptions{
					DiscSteps: cfg.Steps,
					GenSteps:  cfg.Steps,
					LR:        cfg.LearningRate,
				},
			)
			if err != nil {
				return err
			}
			fmt.Printf("P(real labeled real) = %.4f\n", res.ProbRealTrue)
			fmt.Printf("P(fake labeled real) = %.4f\n", res.ProbFakeTrue)
			return nil
		},
	}
}
