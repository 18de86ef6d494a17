package http

import (
	"errors"
	"net/http"

	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/braindump-app/braindump/pkg/usecase"
	"github.com/braindump-app/braindump/pkg/utils/errutil"
)

// handleError maps domain errors to HTTP statuses and emits a JSON
// error body. Unknown errors are 500 and reported upstream.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, usecase.ErrEmptyInput), errors.Is(err, usecase.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrActionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrSearchDisabled):
		status = http.StatusNotImplemented
	case errors.Is(err, types.ErrModelUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, types.ErrMalformedModelOutput):
		status = http.StatusBadGateway
	}

	errutil.HandleHTTP(r.Context(), w, err, status)
}
