package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/zengarden/apiserver/internal/auth"
	"github.com/zengarden/apiserver/internal/services"
	"github.com/zengarden/apiserver/internal/store"
	"github.com/zengarden/apiserver/types"
)

// AuthHandler provides registration and token endpoints.
type AuthHandler struct {
	userService   *services.UserService
	authenticator *auth.Authenticator
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(userService *services.UserService, authenticator *auth.Authenticator) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		authenticator: authenticator,
	}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, userService *services.UserService, authenticator *auth.Authenticator) {
	handler := NewAuthHandler(userService, authenticator)

	r.Post("/register", handler.Register)
	r.Post("/token", handler.Token)
}

// RequireAuth enforces bearer-token authentication. The token's subject is
// resolved against the user store, so tokens for deleted users are
// rejected. All failure modes collapse to the same 401 response.
func RequireAuth(userService *services.UserService, authenticator *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			username, err := authenticator.ParseToken(tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			user, err := userService.GetByUsername(r.Context(), username)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), contextUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Register creates a new user account. No token is issued; login is a
// separate step.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	if req.Password != req.Password2 {
		writeError(w, http.StatusBadRequest, "passwords do not match")
		return
	}

	if _, err := h.userService.GetByUsername(r.Context(), req.Username); err == nil {
		writeError(w, http.StatusBadRequest, "username already registered")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "failed to check user")
		return
	}

	hashed, err := h.authenticator.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	if _, err := h.userService.Create(r.Context(), types.User{
		Username:     req.Username,
		PasswordHash: hashed,
	}); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "User registered successfully"})
}

// Token verifies credentials and issues a bearer token. Unknown usernames
// and wrong passwords produce identical responses.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	req, err := parseLoginRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusUnauthorized, "incorrect username or password")
		return
	}

	user, err := h.userService.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "incorrect username or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	if !h.authenticator.CheckPassword(req.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "incorrect username or password")
		return
	}

	token, err := h.authenticator.IssueToken(user.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create token")
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// parseLoginRequest accepts either a JSON body or a form-encoded body.
func parseLoginRequest(r *http.Request) (LoginRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return LoginRequest{}, err
		}
		return LoginRequest{
			Username: strings.TrimSpace(r.PostFormValue("username")),
			Password: r.PostFormValue("password"),
		}, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return LoginRequest{}, err
		}
		return LoginRequest{
			Username: strings.TrimSpace(r.PostFormValue("username")),
			Password: r.PostFormValue("password"),
		}, nil
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return LoginRequest{}, err
	}
	req.Username = strings.TrimSpace(req.Username)
	return req, nil
}

func bearerToken(r *http.Request) (string, error) {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if authHeader == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("invalid authorization")
	}
	return token, nil
}
