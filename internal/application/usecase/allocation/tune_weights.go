package allocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/application/adapter"
	"github.com/rc-finance/backend/internal/domain/valueobject"
)

// TuneWeightsInput represents the input for a weight tuning run.
type TuneWeightsInput struct {
	UserID uuid.UUID
}

// TuneWeightsOutput represents the output of a weight tuning run.
type TuneWeightsOutput struct {
	Weights     valueobject.WeightSet
	HistoryRows int
}

// TuneWeightsUseCase adjusts the user's scoring weights from their funding
// history and persists the result for the next scoring run. The tuning
// strategy is pluggable; the default is the mean-error heuristic.
type TuneWeightsUseCase struct {
	historyRepo adapter.FundingHistoryRepository
	weightRepo  adapter.WeightRepository
	tuner       WeightTuner
}

// NewTuneWeightsUseCase creates a new TuneWeightsUseCase instance.
func NewTuneWeightsUseCase(
	historyRepo adapter.FundingHistoryRepository,
	weightRepo adapter.WeightRepository,
	tuner WeightTuner,
) *TuneWeightsUseCase {
	return &TuneWeightsUseCase{
		historyRepo: historyRepo,
		weightRepo:  weightRepo,
		tuner:       tuner,
	}
}

// Execute performs the tuning run. Empty history leaves the stored weights
// unchanged (and skips the save).
func (uc *TuneWeightsUseCase) Execute(ctx context.Context, input TuneWeightsInput) (*TuneWeightsOutput, error) {
	history, err := uc.historyRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load funding history: %w", err)
	}

	stored, err := uc.weightRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weights: %w", err)
	}
	current := stored.Merged()

	if len(history) == 0 {
		return &TuneWeightsOutput{Weights: current, HistoryRows: 0}, nil
	}

	updated := uc.tuner.Adjust(history, current)
	if err := uc.weightRepo.Save(ctx, input.UserID, updated); err != nil {
		return nil, fmt.Errorf("failed to save weights: %w", err)
	}

	return &TuneWeightsOutput{Weights: updated, HistoryRows: len(history)}, nil
}
