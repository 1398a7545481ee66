// Package respond provides utilities for sending HTTP responses in JSON
// format. Every error leaves through one classification layer so the wire
// shape stays uniform and internal detail never reaches clients.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"verse-report/internal/domain/entity"
	srcUC "verse-report/internal/usecase/source"
	taxUC "verse-report/internal/usecase/taxonomy"
	txUC "verse-report/internal/usecase/transmission"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers already sent, can only log
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes the uniform error envelope with an explicit status code.
// The message is sent verbatim, so callers must not pass internal errors.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"error": msg})
}

// AppError is an error type that carries a user-facing message alongside
// the internal cause.
type AppError struct {
	UserMsg string // message
	Err     error  // internal error, logged only
	Code    int    // HTTP status code
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// SafeError classifies an error and writes the uniform envelope:
// validation errors → 400, not-found sentinels → 404, conflicts → 409,
// AppError → its own code. Everything unclassified is an opaque 500 with
// the sanitized detail going to the server log only.
func SafeError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			slog.Default().Error("application error",
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.String("error", SanitizeError(appErr.Err)))
		}
		Error(w, appErr.Code, appErr.UserMsg)
		return
	}

	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		Error(w, http.StatusBadRequest, vErr.Error())
		return
	}

	switch {
	case errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, txUC.ErrInvalidTransmissionID):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrNotFound),
		errors.Is(err, txUC.ErrTransmissionNotFound),
		errors.Is(err, taxUC.ErrCategoryNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrConflict),
		errors.Is(err, taxUC.ErrDuplicateTag),
		errors.Is(err, srcUC.ErrDuplicateSource):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, txUC.ErrUnknownSource):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		slog.Default().Error("internal server error",
			slog.String("error", SanitizeError(err)))
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}
