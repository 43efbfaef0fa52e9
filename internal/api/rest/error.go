package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/logger"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// respondError maps a service error onto the HTTP surface
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "validation_error",
			Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, errorResponse{Error: errorBody{
			Code:    "forbidden",
			Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrBidNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrTokenNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: errorBody{
			Code:    "not_found",
			Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, errorResponse{Error: errorBody{
			Code:    "invalid_state",
			Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, errorResponse{Error: errorBody{
			Code:    "upstream_unavailable",
			Message: "blockchain node unavailable",
		}})
	default:
		logger.ErrorCtx(c.Request.Context(), "internal error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: errorBody{
			Code:    "internal_error",
			Message: "internal server error",
		}})
	}
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: errorBody{
		Code:    "bad_request",
		Message: message,
	}})
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, errorResponse{Error: errorBody{
		Code:    "not_found",
		Message: message,
	}})
}

func respondForbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, errorResponse{Error: errorBody{
		Code:    "forbidden",
		Message: message,
	}})
}
