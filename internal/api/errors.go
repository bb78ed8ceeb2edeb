package api

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/soccervitae/soccerapp/pkg/errors"
	"github.com/soccervitae/soccerapp/pkg/response"
)

// writeError maps an error class to its status code.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	msg := apperrors.GetMessage(err)

	switch {
	case apperrors.IsInvalidInput(err):
		response.Error(w, http.StatusBadRequest, orDefault(code, "BAD_REQUEST"), msg)
	case apperrors.IsForbidden(err):
		response.Error(w, http.StatusForbidden, orDefault(code, "FORBIDDEN"), msg)
	case apperrors.IsNotFound(err):
		response.Error(w, http.StatusNotFound, orDefault(code, "NOT_FOUND"), msg)
	case apperrors.IsConflict(err):
		response.Error(w, http.StatusConflict, orDefault(code, "CONFLICT"), msg)
	case apperrors.IsTooManyRequests(err):
		response.Error(w, http.StatusTooManyRequests, orDefault(code, "TOO_MANY_REQUESTS"), msg)
	case errors.Is(err, context.DeadlineExceeded):
		response.Error(w, http.StatusGatewayTimeout, "TIMEOUT", "request timed out")
	default:
		h.logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		response.InternalError(w, "Internal server error")
	}
}

func orDefault(code, fallback string) string {
	if code == "" {
		return fallback
	}
	return code
}
