package allocation

import (
	"math"

	"github.com/rc-finance/backend/internal/domain/valueobject"
)

// slot is one goal's immutable state within an allocation round.
type slot struct {
	id        int64
	remaining float64
	score     float64
}

// Allocate distributes freeCash across scored goals proportionally to
// score, iteratively redistributing surplus from goals that hit their
// remaining need, until the cash is exhausted or no goal can absorb more.
//
// Only goals with remaining > 0 and score > 0 participate. Degenerate
// inputs (no eligible goals, free cash at or below epsilon) yield an
// empty plan; that is not an error. Each round reads an immutable
// snapshot of (id, remaining, score) slots and produces the next round's
// snapshot, so the caller's goals are never mutated.
//
// The loop stops when free cash drops to epsilon, when every goal is
// topped up, when a round allocates less than epsilon, or after the
// round ceiling (eligible goal count + 1 unless params override it).
func Allocate(freeCash float64, scored []valueobject.ScoredGoal, params valueobject.AllocationParams) valueobject.AllocationPlan {
	if params.Epsilon <= 0 {
		params.Epsilon = valueobject.DefaultEpsilon
	}

	eligible := make([]slot, 0, len(scored))
	for _, sg := range scored {
		if sg.Goal.Remaining > 0 && sg.Score > 0 {
			eligible = append(eligible, slot{
				id:        sg.Goal.ID,
				remaining: sg.Goal.Remaining,
				score:     sg.Score,
			})
		}
	}

	plan := make(valueobject.AllocationPlan)
	if len(eligible) == 0 {
		return plan
	}

	maxRounds := params.MaxRounds
	if maxRounds <= 0 {
		maxRounds = len(eligible) + 1
	}

	for round := 0; round < maxRounds && freeCash > params.Epsilon && len(eligible) > 0; round++ {
		totalScore := 0.0
		for _, s := range eligible {
			totalScore += s.score
		}
		// Guarded by the eligibility filter; a zero sum would loop forever.
		if totalScore == 0 {
			break
		}

		next := make([]slot, 0, len(eligible))
		allocatedThisRound := 0.0

		for _, s := range eligible {
			proposed := freeCash * (s.score / totalScore)
			actual := math.Min(proposed, s.remaining)
			if actual > 0 {
				plan[s.id] += actual
				allocatedThisRound += actual
			}

			left := s.remaining - actual
			if left > params.Epsilon {
				next = append(next, slot{id: s.id, remaining: left, score: s.score})
			}
		}

		// No goal could usefully absorb more.
		if allocatedThisRound < params.Epsilon {
			break
		}

		freeCash -= allocatedThisRound
		eligible = next
	}

	return plan
}
