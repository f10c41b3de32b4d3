package handlers

import (
	"errors"
	"net/http"

	"capex-forecast/internal/api/models"
	"capex-forecast/internal/model"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// respondDomainError maps core errors to HTTP codes. Anything not recognized
// as a caller fault is a 500.
func respondDomainError(c *gin.Context, err error) {
	var invalid *model.InvalidParameterError
	var method *model.UnsupportedMethodError
	var payment *model.UnsupportedPaymentTypeError
	switch {
	case errors.As(err, &invalid):
		respondError(c, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
	case errors.As(err, &method):
		respondError(c, http.StatusBadRequest, "UNSUPPORTED_METHOD", err.Error())
	case errors.As(err, &payment):
		respondError(c, http.StatusBadRequest, "UNSUPPORTED_PAYMENT_TYPE", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
