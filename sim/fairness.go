// sim/fairness.go
package sim

import "gonum.org/v1/gonum/floats"

// JainsFairnessIndex computes J(x) = (Σx)² / (n · Σx²) over a value list.
// The result is in (0, 1], with 1.0 meaning perfectly equal values.
// Defined as 0.0 when the input is empty or all values are zero.
func JainsFairnessIndex(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	denom := floats.Dot(values, values)
	if denom == 0 {
		return 0.0
	}
	total := floats.Sum(values)
	return (total * total) / (float64(len(values)) * denom)
}
