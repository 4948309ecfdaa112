package v1

import (
	"errors"
	"net/http"

	"github.com/duobudget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no envelope matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrEnvelopeNameInUse) || errors.Is(err, models.ErrProductNameInUse) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errAmountNotDecimal = errors.New("the amount must be a decimal number in a string, like \"12.34\"")
	errUserNotSet       = errors.New("the user parameter must be set")
)

// Operation dispatch errors
var (
	errOperationUnknown = errors.New("there is no operation with this name")
)
