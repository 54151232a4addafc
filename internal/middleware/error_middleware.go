package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bureauchain/diplomachain/internal/app/models/dto"
	"github.com/bureauchain/diplomachain/internal/pkg/apperrors"
	"github.com/bureauchain/diplomachain/internal/pkg/logger"
)

// HandleAPIError maps an application error onto the HTTP response. Every
// controller funnels its service errors through here so status codes stay
// consistent across endpoints.
func HandleAPIError(c *gin.Context, err error) {
	message := errorMessage(err)

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))
	case errors.Is(err, apperrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)))
	case errors.Is(err, apperrors.ErrCycleDetected):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeHierarchyCycle, message)))
	case errors.Is(err, apperrors.ErrTransport):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeLedgerUnavailable, "Ledger unavailable")))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// errorMessage prefers the curated CustomError message over the raw chain.
func errorMessage(err error) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return err.Error()
}
