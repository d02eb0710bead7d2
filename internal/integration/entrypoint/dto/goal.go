package dto

import (
	"time"

	"github.com/rc-finance/backend/internal/application/usecase/goal"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string   `json:"name" binding:"required"`
	TargetAmount  float64  `json:"target_amount" binding:"required,gt=0"`
	DueDate       *string  `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Impact        *float64 `json:"impact,omitempty" binding:"omitempty,gte=0,lte=1"`
	PriorityUser  *float64 `json:"priority_user,omitempty" binding:"omitempty,gte=0,lte=1"`
	StabilityHint *float64 `json:"stability_hint,omitempty" binding:"omitempty,gte=0,lte=1"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty"`
	TargetAmount  *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	DueDate       *string  `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ClearDueDate  bool     `json:"clear_due_date,omitempty"`
	Impact        *float64 `json:"impact,omitempty" binding:"omitempty,gte=0,lte=1"`
	PriorityUser  *float64 `json:"priority_user,omitempty" binding:"omitempty,gte=0,lte=1"`
	StabilityHint *float64 `json:"stability_hint,omitempty" binding:"omitempty,gte=0,lte=1"`
}

// FundGoalRequest represents the request body for funding a goal.
// Negative amounts are refunds.
type FundGoalRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	FundedAmount  float64   `json:"funded_amount"`
	Remaining     float64   `json:"remaining"`
	Progress      float64   `json:"progress"`
	DueDate       *string   `json:"due_date,omitempty"`
	Impact        float64   `json:"impact"`
	PriorityUser  float64   `json:"priority_user"`
	StabilityHint float64   `json:"stability_hint"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// FundGoalResponse represents the response for funding a goal.
type FundGoalResponse struct {
	Goal    GoalResponse `json:"goal"`
	Applied float64      `json:"applied"`
}

// ToGoalResponse converts a GoalOutput to a GoalResponse DTO.
func ToGoalResponse(output *goal.GoalOutput) GoalResponse {
	response := GoalResponse{
		ID:            output.ID,
		UserID:        output.UserID.String(),
		Name:          output.Name,
		TargetAmount:  output.TargetAmount,
		FundedAmount:  output.FundedAmount,
		Remaining:     output.Remaining,
		Progress:      output.Progress,
		Impact:        output.Impact,
		PriorityUser:  output.PriorityUser,
		StabilityHint: output.StabilityHint,
		CreatedAt:     output.CreatedAt,
		UpdatedAt:     output.UpdatedAt,
	}

	if output.DueDate != nil {
		dateStr := output.DueDate.Format("2006-01-02")
		response.DueDate = &dateStr
	}

	return response
}

// ToGoalListResponse converts a list of GoalOutput to GoalListResponse.
func ToGoalListResponse(outputs []*goal.GoalOutput) GoalListResponse {
	goals := make([]GoalResponse, len(outputs))
	for i, output := range outputs {
		goals[i] = ToGoalResponse(output)
	}
	return GoalListResponse{
		Goals: goals,
	}
}
