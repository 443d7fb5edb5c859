package handlers

import (
	"net/http"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Result is the envelope every action returns. Exactly one of Data and Error
// is meaningful, selected by OK.
type Result struct {
	OK      bool         `json:"ok"`
	Message string       `json:"message,omitempty" example:"Company created successfully!"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ResultError `json:"error,omitempty"`
}

// ResultError describes a failed action
type ResultError struct {
	Kind    apperrors.Kind    `json:"kind" example:"validation"`
	Message string            `json:"message" example:"Invalid data provided."`
	Fields  map[string]string `json:"fields,omitempty"`
}

// respondOK writes a successful envelope
func respondOK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Result{OK: true, Data: data, Message: message})
}

// respondError writes a failed envelope. Unexpected errors are logged with
// their cause and reported with a fixed message.
func respondError(c *gin.Context, err error) {
	status, body := describeError(err)
	if body.Kind == apperrors.KindUnexpected {
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.FullPath()).
			Error("request failed")
		_ = c.Error(err)
	}
	c.JSON(status, Result{OK: false, Error: body})
}

// describeError maps an error onto its status code and client-facing description
func describeError(err error) (int, *ResultError) {
	kind, message, fields := apperrors.Describe(err)
	body := &ResultError{Kind: kind, Message: message, Fields: fields}
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest, body
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized, body
	case apperrors.KindNotFoundOrForbidden:
		return http.StatusNotFound, body
	case apperrors.KindConflict:
		return http.StatusConflict, body
	default:
		body.Kind = apperrors.KindUnexpected
		body.Message = apperrors.UnexpectedMessage
		return http.StatusInternalServerError, body
	}
}

// errInvalidBody is reported when a request body cannot be decoded
var errInvalidBody = apperrors.NewValidationError("body", "Invalid data provided.")
