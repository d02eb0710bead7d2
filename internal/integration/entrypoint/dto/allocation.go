package dto

import (
	"sort"

	"github.com/rc-finance/backend/internal/application/usecase/allocation"
)

// PreviewPlanRequest represents the request body for an allocation preview
// or apply run.
type PreviewPlanRequest struct {
	FreeCash float64            `json:"free_cash" binding:"gte=0"`
	Weights  map[string]float64 `json:"weights,omitempty"`
}

// PlanEntryResponse is one goal's share of an allocation plan.
type PlanEntryResponse struct {
	GoalID int64   `json:"goal_id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Amount float64 `json:"amount"`
}

// PreviewPlanResponse represents the response for an allocation preview.
type PreviewPlanResponse struct {
	Entries        []PlanEntryResponse `json:"entries"`
	TotalAllocated float64             `json:"total_allocated"`
	Unallocated    float64             `json:"unallocated"`
}

// AppliedGoalResponse is one funded goal in an apply response.
type AppliedGoalResponse struct {
	GoalID       int64   `json:"goal_id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	FundedAmount float64 `json:"funded_amount"`
	Progress     float64 `json:"progress"`
}

// ApplyPlanResponse represents the response for applying an allocation plan.
type ApplyPlanResponse struct {
	Applied      []AppliedGoalResponse `json:"applied"`
	TotalApplied float64               `json:"total_applied"`
	Unallocated  float64               `json:"unallocated"`
}

// WeightsResponse represents a scoring weight set in API responses.
type WeightsResponse struct {
	Weights map[string]float64 `json:"weights"`
}

// TuneWeightsResponse represents the response of a weight tuning run.
type TuneWeightsResponse struct {
	Weights     map[string]float64 `json:"weights"`
	HistoryRows int                `json:"history_rows"`
}

// ToPreviewPlanResponse converts a preview output to its response DTO.
// Entries follow the scoring order (score descending) and only goals with
// a positive allocation appear.
func ToPreviewPlanResponse(output *allocation.PreviewPlanOutput) PreviewPlanResponse {
	entries := make([]PlanEntryResponse, 0, len(output.Plan))
	for _, sg := range output.Scored {
		amount, ok := output.Plan[sg.Goal.ID]
		if !ok {
			continue
		}
		entries = append(entries, PlanEntryResponse{
			GoalID: sg.Goal.ID,
			Name:   sg.Goal.Name,
			Score:  sg.Score,
			Amount: amount,
		})
	}

	return PreviewPlanResponse{
		Entries:        entries,
		TotalAllocated: output.TotalAllocated,
		Unallocated:    output.Unallocated,
	}
}

// ToApplyPlanResponse converts an apply output to its response DTO.
func ToApplyPlanResponse(output *allocation.ApplyPlanOutput) ApplyPlanResponse {
	applied := make([]AppliedGoalResponse, len(output.Applied))
	for i, a := range output.Applied {
		applied[i] = AppliedGoalResponse{
			GoalID:       a.GoalID,
			Name:         a.Name,
			Amount:       a.Amount,
			FundedAmount: a.FundedAmount,
			Progress:     a.Progress,
		}
	}
	sort.SliceStable(applied, func(i, j int) bool {
		return applied[i].GoalID < applied[j].GoalID
	})

	return ApplyPlanResponse{
		Applied:      applied,
		TotalApplied: output.TotalApplied,
		Unallocated:  output.Unallocated,
	}
}
