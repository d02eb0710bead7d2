package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rc-finance/backend/internal/application/usecase/allocation"
	domainerror "github.com/rc-finance/backend/internal/domain/error"
	"github.com/rc-finance/backend/internal/domain/valueobject"
	"github.com/rc-finance/backend/internal/integration/entrypoint/dto"
	"github.com/rc-finance/backend/internal/integration/entrypoint/middleware"
)

// AllocationController handles allocation planning endpoints.
type AllocationController struct {
	previewUseCase    *allocation.PreviewPlanUseCase
	applyUseCase      *allocation.ApplyPlanUseCase
	getWeightsUseCase *allocation.GetWeightsUseCase
	tuneUseCase       *allocation.TuneWeightsUseCase
}

// NewAllocationController creates a new allocation controller instance.
func NewAllocationController(
	previewUseCase *allocation.PreviewPlanUseCase,
	applyUseCase *allocation.ApplyPlanUseCase,
	getWeightsUseCase *allocation.GetWeightsUseCase,
	tuneUseCase *allocation.TuneWeightsUseCase,
) *AllocationController {
	return &AllocationController{
		previewUseCase:    previewUseCase,
		applyUseCase:      applyUseCase,
		getWeightsUseCase: getWeightsUseCase,
		tuneUseCase:       tuneUseCase,
	}
}

// Preview handles POST /allocations/preview requests.
func (c *AllocationController) Preview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	var req dto.PreviewPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), allocation.PreviewPlanInput{
		UserID:   userID,
		FreeCash: req.FreeCash,
		Weights:  valueobject.WeightSet(req.Weights),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPreviewPlanResponse(output))
}

// Apply handles POST /allocations/apply requests.
func (c *AllocationController) Apply(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	var req dto.PreviewPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.applyUseCase.Execute(ctx.Request.Context(), allocation.ApplyPlanInput{
		UserID:   userID,
		FreeCash: req.FreeCash,
		Weights:  valueobject.WeightSet(req.Weights),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToApplyPlanResponse(output))
}

// GetWeights handles GET /allocations/weights requests.
func (c *AllocationController) GetWeights(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	output, err := c.getWeightsUseCase.Execute(ctx.Request.Context(), allocation.GetWeightsInput{
		UserID: userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WeightsResponse{Weights: output.Weights})
}

// TuneWeights handles POST /allocations/weights/tune requests.
func (c *AllocationController) TuneWeights(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	output, err := c.tuneUseCase.Execute(ctx.Request.Context(), allocation.TuneWeightsInput{
		UserID: userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TuneWeightsResponse{
		Weights:     output.Weights,
		HistoryRows: output.HistoryRows,
	})
}
