package optim_test

import (
	"math"
	"testing"

	"github.com/qgrad-ml/qgrad/internal/circuit"
	"github.com/qgrad-ml/qgrad/internal/grad"
	"github.com/qgrad-ml/qgrad/internal/optim"
	"github.com/qgrad-ml/qgrad/internal/sim"
)

// quadratic is f(x) = sum((x_i - c_i)^2), with known gradient.
func quadratic(center []float64) grad.Objective {
	return grad.Func{
		ValueFunc: func(params []float64) (float64, error) {
			var v float64
			for i := range params {
				d := params[i] - center[i]
				v += d * d
			}
			return v, nil
		},
		GradientFunc: func(params []float64) ([]float64, error) {
			g := make([]float64, len(params))
			for i := range params {
				g[i] = 2 * (params[i] - center[i])
			}
			return g, nil
		},
	}
}

// TestGradientDescent_SimpleUpdate checks one step of the update rule.
func TestGradientDescent_SimpleUpdate(t *testing.T) {
	obj := quadratic([]float64{0})
	opt := optim.NewGradientDescent(optim.Config{LR: 0.1})

	// x = 2, grad = 4: x_new = 2 - 0.1*4 = 1.6.
	updated, err := opt.Step(obj, []float64{2})
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if math.Abs(updated[0]-1.6) > 1e-12 {
		t.Errorf("update: got %v, want 1.6", updated[0])
	}
}

// TestGradientDescent_Pure checks Step does not mutate its input and that
// identical inputs give identical outputs.
func TestGradientDescent_Pure(t *testing.T) {
	obj := quadratic([]float64{1, -1})
	opt := optim.NewGradientDescent(optim.Config{LR: 0.05})

	params := []float64{0.3, 0.7}
	first, err := opt.Step(obj, params)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if params[0] != 0.3 || params[1] != 0.7 {
		t.Fatalf("Step mutated its input: %v", params)
	}
	second, err := opt.Step(obj, params)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("param %d: %v != %v, Step is not pure", i, first[i], second[i])
		}
	}
}

// TestGradientDescent_DefaultLR checks the zero-config default.
func TestGradientDescent_DefaultLR(t *testing.T) {
	opt := optim.NewGradientDescent(optim.Config{})
	if opt.LR() != 0.01 {
		t.Errorf("default LR = %v, want 0.01", opt.LR())
	}
}

// TestMomentum_Accumulates checks the velocity buffer builds up across
// steps: with a constant gradient the second step moves farther.
func TestMomentum_Accumulates(t *testing.T) {
	constGrad := grad.Func{
		ValueFunc:    func(params []float64) (float64, error) { return params[0], nil },
		GradientFunc: func(params []float64) ([]float64, error) { return []float64{1}, nil },
	}
	opt := optim.NewMomentum(optim.MomentumConfig{LR: 0.1, Momentum: 0.9})

	p1, err := opt.Step(constGrad, []float64{0})
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	// First step: velocity = 1, move = -0.1.
	if math.Abs(p1[0]+0.1) > 1e-12 {
		t.Errorf("first step: got %v, want -0.1", p1[0])
	}
	p2, err := opt.Step(constGrad, p1)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	// Second step: velocity = 0.9 + 1 = 1.9, move = -0.19.
	if math.Abs(p2[0]-(-0.1-0.19)) > 1e-12 {
		t.Errorf("second step: got %v, want -0.29", p2[0])
	}
}

// TestAdam_Converges minimizes a shifted quadratic.
func TestAdam_Converges(t *testing.T) {
	obj := quadratic([]float64{3, -2})
	opt := optim.NewAdam(optim.AdamConfig{LR: 0.1})

	params := []float64{0, 0}
	var err error
	for i := 0; i < 500; i++ {
		params, err = opt.Step(obj, params)
		if err != nil {
			t.Fatalf("Step %d failed: %v", i, err)
		}
	}
	v, _ := obj.Value(params)
	if v > 1e-4 {
		t.Errorf("Adam after 500 steps: cost %v, want < 1e-4 (params %v)", v, params)
	}
}

// TestAdam_Defaults checks zero-config hyperparameters.
func TestAdam_Defaults(t *testing.T) {
	opt := optim.NewAdam(optim.AdamConfig{})
	if opt.LR() != 0.001 {
		t.Errorf("default LR = %v, want 0.001", opt.LR())
	}
}

// TestGradientDescent_CircuitCost runs the full 100-step optimization of
//
//	cost(w) = (circuit(w0, w1) - 0.33)^2 + w2^2
//
// over an RX/RY circuit and checks monotone decrease plus convergence below
// 1e-6, with the third weight flowing only through the classical penalty.
func TestGradientDescent_CircuitCost(t *testing.T) {
	const target = 0.33
	c, err := circuit.NewBuilder(1).
		RX(0, 0).
		RY(1, 0).
		Slots(3).
		Build(circuit.PauliZObs(0))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	d := grad.New(sim.New())
	cost := grad.Chain(
		grad.FromCircuit(d, c),
		func(y float64, params []float64) float64 {
			delta := y - target
			return delta*delta + params[2]*params[2]
		},
		func(y float64, params []float64) (float64, []float64) {
			return 2 * (y - target), []float64{0, 0, 2 * params[2]}
		},
	)

	opt := optim.NewGradientDescent(optim.Config{LR: 0.1})
	params := []float64{0.5, 0.5, 0.3}
	prev, err := cost.Value(params)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	for step := 0; step < 100; step++ {
		params, err = opt.Step(cost, params)
		if err != nil {
			t.Fatalf("Step %d failed: %v", step, err)
		}
		v, err := cost.Value(params)
		if err != nil {
			t.Fatalf("Value failed: %v", err)
		}
		if v > prev+1e-12 {
			t.Fatalf("step %d: cost rose from %v to %v", step, prev, v)
		}
		prev = v
	}
	if prev > 1e-6 {
		t.Errorf("final cost %v, want < 1e-6", prev)
	}
}
