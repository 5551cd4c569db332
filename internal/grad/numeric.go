package grad

// defaultFDStep is the central-difference step used when none is given.
const defaultFDStep = 1e-6

// NumericalGradient approximates an objective's gradient by central finite
// differences with the given step (0 means 1e-6).
//
// This is a verification tool, not a substitute for the parameter-shift
// rule: it carries truncation error on the order of step squared and costs
// the same two evaluations per parameter.
func NumericalGradient(obj Objective, params []float64, step float64) ([]float64, error) {
	if step == 0 {
		step = defaultFDStep
	}
	shifted := make([]float64, len(params))
	copy(shifted, params)
	out := make([]float64, len(params))
	for i := range params {
		shifted[i] = params[i] + step
		plus, err := obj.Value(shifted)
		if err != nil {
			return nil, err
		}
		shifted[i] = params[i] - step
		minus, err := obj.Value(shifted)
		if err != nil {
			return nil, err
		}
		shifted[i] = params[i]
		out[i] = (plus - minus) / (2 * step)
	}
	return out, nil
}
