package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/rc-finance/backend/internal/domain/error"
	"github.com/rc-finance/backend/internal/integration/entrypoint/dto"
)

// respondDomainError maps coded domain errors to HTTP responses.
// Unrecognized errors become a 500 without leaking internals.
func respondDomainError(c *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		c.JSON(goalErrorStatus(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var allocErr *domainerror.AllocationError
	if errors.As(err, &allocErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: allocErr.Message,
			Code:  string(allocErr.Code),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

func goalErrorStatus(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
