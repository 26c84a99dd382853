package handlers

import (
	"errors"

	"github.com/agora-dev/teko-board/backend/internal/services"
	"github.com/agora-dev/teko-board/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

// respondStoreError maps service-layer errors onto HTTP responses.
// Constraint rejections from the store surface as 422 so the client can
// distinguish them from malformed input, and connectivity failures as 502
// because the record store is an upstream dependency.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(c, notFoundMsg)
	case errors.Is(err, services.ErrValidationRejected):
		response.Error(c, response.NewUnprocessable(err.Error()))
	case errors.Is(err, services.ErrStoreUnreachable):
		response.Error(c, response.NewBadGateway(err.Error()))
	default:
		response.ServerError(c, err.Error())
	}
}
