package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/apikeeper/internal/common"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, out interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeServiceError maps service errors to status codes and machine-readable
// codes. Storage causes are logged, never returned.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrBadRequest):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_request", "message": err.Error()})
	case errors.Is(err, common.ErrDuplicateUser):
		writeError(w, http.StatusConflict, "duplicate_user")
	case errors.Is(err, common.ErrDuplicateAdmin):
		writeError(w, http.StatusConflict, "duplicate_admin")
	case errors.Is(err, common.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, common.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "invalid_token")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		s.logger.Error(r.Context(), "request failed",
			"request_id", requestIDFromContext(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
	}
}
