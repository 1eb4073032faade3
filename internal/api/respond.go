package api

import (
	"encoding/json"
	"net/http"

	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
)

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{Success: status < 400, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusFor(err), err.Error(), nil)
}

func statusFor(err error) int {
	switch appErrors.CodeOf(err) {
	case appErrors.CodeInvalidArgument:
		return http.StatusBadRequest
	case appErrors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case appErrors.CodePermissionDenied:
		return http.StatusForbidden
	case appErrors.CodeNotFound:
		return http.StatusNotFound
	case appErrors.CodeAlreadyExists, appErrors.CodeFailedPrecondition:
		return http.StatusConflict
	case appErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return appErrors.InvalidArg("malformed request body")
	}
	return nil
}
