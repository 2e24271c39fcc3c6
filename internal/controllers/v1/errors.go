package v1

import (
	"errors"
	"net/http"

	"github.com/spendlog/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// errInvalidQueryString is returned when a query string could not be parsed
var errInvalidQueryString = errors.New("the query string contains unparseable data, please check the values")

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

// Analytics errors
var (
	errFromNotSet  = errors.New("the from parameter must be set")
	errUntilNotSet = errors.New("the until parameter must be set")
)
