package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zengarden/apiserver/types"
)

type contextKey string

const contextUserKey contextKey = "user"

var errNoUser = errors.New("no authenticated user in context")

func userFromContext(ctx context.Context) (types.User, error) {
	user, ok := ctx.Value(contextUserKey).(types.User)
	if !ok || user.ID < 1 {
		return types.User{}, errNoUser
	}
	return user, nil
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgment payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service identity on the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Healthz returns a handler reporting the service name and version.
func Healthz(name, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Name:    name,
			Version: version,
		})
	}
}
