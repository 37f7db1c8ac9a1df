package api

import (
	"net/http"

	"github.com/matzehuels/segaxis/pkg/errors"
	"github.com/matzehuels/segaxis/pkg/observability"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidSegments,
		errors.ErrCodeInvalidAxis,
		errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeErrorStatus(w, r, StatusFor(errors.GetCode(err)), err)
}

func (s *server) writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, err error) {
	ctx := r.Context()
	id := RequestIDFrom(ctx)
	observability.HTTP().OnError(ctx, r.Method, r.URL.Path, id, err)

	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", id, "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("request rejected", "request_id", id, "path", r.URL.Path, "error", err)
	}

	writeJSON(w, status, ErrorResponse{Code: code, Message: msg, RequestID: id})
}
