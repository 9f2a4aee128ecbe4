package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"postsvc/internal/service"
	"postsvc/pkg/logger"
)

// recorder remembers the status and drops any WriteHeader after the first,
// so a late failure cannot replace a response already on the wire.
type recorder struct {
	http.ResponseWriter
	status int
}

func (r *recorder) WriteHeader(code int) {
	if r.status != 0 {
		return
	}
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respond writes a JSON body on success and an empty body otherwise.
func respond(ctx context.Context, w http.ResponseWriter, payload any, err error) {
	log := logger.FromContext(ctx)

	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Error("operation failed", "error", err)
		} else {
			log.Debug("operation rejected", "status", status, "error", err)
		}
		w.WriteHeader(status)
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error("encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Warn("write response", "error", err)
	}
}
