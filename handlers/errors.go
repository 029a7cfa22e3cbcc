package handlers

import (
	"errors"
	"net/http"

	"fixify/services/booking"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service-layer errors to HTTP responses:
// AccessDenied 403, NotFound 404, InvalidSignature/Validation 400,
// Conflict 409, anything else 500.
func respondError(c *gin.Context, err error) {
	var (
		accessDenied booking.AccessDeniedError
		notFound     booking.NotFoundError
		badSignature booking.InvalidSignatureError
		validation   booking.ValidationError
		conflict     booking.ConflictError
	)
	switch {
	case errors.As(err, &accessDenied):
		utils.JSONError(c, http.StatusForbidden, "Access denied", err.Error())
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.As(err, &badSignature):
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment signature", err.Error())
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
