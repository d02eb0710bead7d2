package valueobject

import (
	"github.com/rc-finance/backend/internal/domain/entity"
)

// ScoredGoal pairs a planning goal with its computed priority score.
// Ephemeral: it exists only within one scoring/allocation call chain.
type ScoredGoal struct {
	Goal  entity.PlanningGoal
	Score float64
}

// AllocationPlan maps goal ID to the cumulative amount allocated to it.
// Every entry is strictly positive; goals that receive nothing are absent.
type AllocationPlan map[int64]float64

// Total returns the sum of all allocated amounts.
func (p AllocationPlan) Total() float64 {
	total := 0.0
	for _, amount := range p {
		total += amount
	}
	return total
}

// AllocationParams tunes the allocation loop.
type AllocationParams struct {
	// Epsilon is the currency-unit tolerance used for all convergence
	// checks (leftover cash, per-goal top-up, per-round progress).
	Epsilon float64

	// MaxRounds caps the redistribution loop. Zero means "derive from the
	// eligible goal count" (one round per goal becoming fully funded,
	// plus one).
	MaxRounds int
}

// DefaultEpsilon is the convergence tolerance in currency units.
const DefaultEpsilon = 0.01

// DefaultAllocationParams returns the standard loop parameters.
func DefaultAllocationParams() AllocationParams {
	return AllocationParams{
		Epsilon:   DefaultEpsilon,
		MaxRounds: 0,
	}
}
