// Package valueobject contains domain value objects for the Goal Funding Planner.
package valueobject

// Scoring factor names. A WeightSet maps each of these to a coefficient.
const (
	WeightUrgency      = "urgency"
	WeightImpact       = "impact"
	WeightPriorityUser = "priority_user"
	WeightStability    = "stability"
	WeightFundedPct    = "funded_pct"
)

// WeightFactors lists every known scoring factor, in score-formula order.
var WeightFactors = []string{
	WeightUrgency,
	WeightImpact,
	WeightPriorityUser,
	WeightStability,
	WeightFundedPct,
}

// WeightSet maps factor name to its scoring coefficient. Weights are
// independent coefficients; there is no sum-to-one constraint.
type WeightSet map[string]float64

// DefaultWeightSet returns the default scoring weights.
func DefaultWeightSet() WeightSet {
	return WeightSet{
		WeightUrgency:      0.3,
		WeightImpact:       0.2,
		WeightPriorityUser: 0.2,
		WeightStability:    0.1,
		WeightFundedPct:    0.2,
	}
}

// Merged overlays w onto the defaults key-by-key. Unknown keys in w are
// carried through untouched; missing keys fall back to their default.
func (w WeightSet) Merged() WeightSet {
	merged := DefaultWeightSet()
	for k, v := range w {
		merged[k] = v
	}
	return merged
}

// Clone returns an independent copy of the weight set.
func (w WeightSet) Clone() WeightSet {
	c := make(WeightSet, len(w))
	for k, v := range w {
		c[k] = v
	}
	return c
}
