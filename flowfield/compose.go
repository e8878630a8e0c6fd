package flowfield

import "github.com/katalvlaran/gridpath/gridmodel"

// Compose combines several integration fields cell-by-cell under rule,
// then recomputes the flow field from the composed integration field so
// the two stay consistent. weights is only consulted for
// WeightedAverage; its length must match fields, or uniform weighting
// is used.
func Compose(fields []*Result, rule CompositionRule, weights []float64, grid *gridmodel.Grid, config Config) (*Result, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	w, h := fields[0].Width, fields[0].Height
	for _, f := range fields[1:] {
		if f.Width != w || f.Height != h {
			return nil, ErrFieldDimensionMismatch
		}
	}

	n := w * h
	composed := make([]float64, n)
	for i := 0; i < n; i++ {
		composed[i] = combineCell(fields, i, rule, weights)
	}

	res := &Result{Width: w, Height: h, IntegrationField: composed, Success: true}
	res.Stats.Success = true
	deriveFlowField(grid, config, res)

	return res, nil
}

func combineCell(fields []*Result, i int, rule CompositionRule, weights []float64) float64 {
	switch rule {
	case Maximum:
		best := 0.0
		for _, f := range fields {
			if f.IntegrationField[i] > best {
				best = f.IntegrationField[i]
			}
		}

		return best
	case WeightedAverage:
		return weightedAverage(fields, i, weights)
	default: // Minimum
		best := Unreachable
		for _, f := range fields {
			if f.IntegrationField[i] < best {
				best = f.IntegrationField[i]
			}
		}

		return best
	}
}

func weightedAverage(fields []*Result, i int, weights []float64) float64 {
	useUniform := len(weights) != len(fields)
	var sum, weightSum float64
	for k, f := range fields {
		v := f.IntegrationField[i]
		if v == Unreachable {
			continue
		}
		w := 1.0
		if !useUniform {
			w = weights[k]
		}
		sum += v * w
		weightSum += w
	}
	if weightSum == 0 {
		return Unreachable
	}

	return sum / weightSum
}
