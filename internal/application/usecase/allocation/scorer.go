// Package allocation contains the goal-funding allocation engine and its
// orchestration use cases.
package allocation

import (
	"math"
	"sort"
	"time"

	"github.com/rc-finance/backend/internal/domain/entity"
	"github.com/rc-finance/backend/internal/domain/valueobject"
)

// HorizonDays is the urgency decay horizon: a goal due this many days out
// (or further) scores zero urgency.
const HorizonDays = 365

// ComputeScores computes a priority score per goal and returns the pairs
// sorted by score descending. Ties keep their original relative order.
// The function is pure: it does not mutate its inputs.
//
// Per goal:
//
//	score = w.urgency * urgency
//	      + w.impact * impact
//	      + w.priority_user * priority_user
//	      + w.stability * (1 - stability_hint)
//	      - w.funded_pct * funded_pct
//
// clamped to a minimum of 0. Missing weight keys fall back to defaults
// key-by-key.
func ComputeScores(goals []entity.PlanningGoal, today time.Time, w valueobject.WeightSet) []valueobject.ScoredGoal {
	weights := w.Merged()

	scored := make([]valueobject.ScoredGoal, 0, len(goals))
	for _, goal := range goals {
		score := weights[valueobject.WeightUrgency]*urgency(goal.DueDate, today) +
			weights[valueobject.WeightImpact]*goal.Impact +
			weights[valueobject.WeightPriorityUser]*goal.PriorityUser +
			weights[valueobject.WeightStability]*(1.0-goal.StabilityHint) -
			weights[valueobject.WeightFundedPct]*goal.FundedPct

		if score < 0 {
			score = 0
		}

		scored = append(scored, valueobject.ScoredGoal{Goal: goal, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// urgency maps a due date to [0, 1]: due today or overdue is maximally
// urgent, then linear decay to 0 over the horizon. A zero due date means
// no deadline and scores no urgency.
func urgency(dueDate, today time.Time) float64 {
	if dueDate.IsZero() {
		return 0.0
	}
	days := wholeDays(today, dueDate)
	if days <= 0 {
		return 1.0
	}
	return math.Max(0.0, 1.0-float64(days)/float64(HorizonDays))
}

// wholeDays returns the calendar-day difference to - from, ignoring the
// time-of-day component of both.
func wholeDays(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
