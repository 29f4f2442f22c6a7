package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
)

// writeData wraps a successful payload in the data envelope.
func writeData(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{"data": payload}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError renders an error body of {message, ...meta} with the
// status derived from the error code.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
	}

	body := map[string]any{"message": errors.GetMessage(err)}
	for key, value := range errors.GetMeta(err) {
		body[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil {
		slog.Error("failed to encode error response", "error", encodeErr)
	}
}

// decodeBody parses a JSON request body into dst. An empty body is
// allowed and leaves dst at its zero value.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}
