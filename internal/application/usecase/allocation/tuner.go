package allocation

import (
	"github.com/rc-finance/backend/internal/domain/entity"
	"github.com/rc-finance/backend/internal/domain/valueobject"
)

// DefaultLearningRate is the step size for the mean-error weight tuner.
const DefaultLearningRate = 0.05

// WeightTuner adjusts scoring weights from planned-vs-actual funding
// history. Implementations must keep every weight within [0, 1] and
// return the input unchanged on empty history.
type WeightTuner interface {
	Adjust(history []*entity.FundingRecord, weights valueobject.WeightSet) valueobject.WeightSet
}

// MeanErrorTuner is a coarse single-signal feedback rule, not a gradient
// optimizer: it nudges weights in a fixed direction based on the aggregate
// over/under-funding bias of the history. A heuristic knob, nothing more.
type MeanErrorTuner struct {
	LearningRate float64
}

// NewMeanErrorTuner creates a tuner with the given learning rate.
// Non-positive rates fall back to the default.
func NewMeanErrorTuner(learningRate float64) *MeanErrorTuner {
	if learningRate <= 0 {
		learningRate = DefaultLearningRate
	}
	return &MeanErrorTuner{LearningRate: learningRate}
}

// Adjust computes mean(planned - actual) over the history, then adds
// lr*meanError to the funded_pct weight and subtracts it from every other
// weight, clamping each into [0, 1].
func (t *MeanErrorTuner) Adjust(history []*entity.FundingRecord, weights valueobject.WeightSet) valueobject.WeightSet {
	updated := weights.Clone()
	if len(history) == 0 {
		return updated
	}

	totalError := 0.0
	for _, record := range history {
		totalError += record.PlannedAmount - record.ActualAmount
	}
	meanError := totalError / float64(len(history))

	for key, value := range updated {
		if key == valueobject.WeightFundedPct {
			updated[key] = clamp01(value + t.LearningRate*meanError)
		} else {
			updated[key] = clamp01(value - t.LearningRate*meanError)
		}
	}

	return updated
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
