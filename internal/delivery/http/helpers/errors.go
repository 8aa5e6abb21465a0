package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"poapregistry/internal/domain"
)

// StatusForError maps a domain error onto an HTTP status.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrEventAlreadyRegistered),
		errors.Is(err, domain.ErrBadgeAlreadyIssued),
		errors.Is(err, domain.ErrAlreadyInstantiated),
		errors.Is(err, domain.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNameTooShort),
		errors.Is(err, domain.ErrNameTooLong),
		errors.Is(err, domain.ErrInvalidImageURL),
		errors.Is(err, domain.ErrStartBeforeEnd),
		errors.Is(err, domain.ErrEventAlreadyOver),
		errors.Is(err, domain.ErrEventNotStarted),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteDomainError writes err with its domain code. Unmapped errors are logged and
// reported as internal_error without detail.
func WriteDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, status, ErrCodeInternalError, "internal error")
		return
	}
	WriteJSONError(w, status, domain.ErrorCode(err), err.Error())
}
