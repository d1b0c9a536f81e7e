package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"socialfit/internal/httputil"
	"socialfit/internal/model"
	"socialfit/internal/service"
	"socialfit/internal/transport/http/middleware"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		httputil.WriteBadRequest(w, "Name, email and password are required")
		return
	}

	resp, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidRole):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrEmailExists):
			httputil.WriteConflict(w, err.Error())
		case errors.Is(err, model.ErrStoreUnavailable):
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
		default:
			log.Printf("[ERROR] Register handler: %v", err)
			httputil.WriteInternalError(w, "Failed to register")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCredentials):
			httputil.WriteUnauthorized(w, "Invalid credentials")
		case errors.Is(err, model.ErrStoreUnavailable):
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
		default:
			log.Printf("[ERROR] Login handler: %v", err)
			httputil.WriteInternalError(w, "Failed to login")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// Me handles GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		case errors.Is(err, model.ErrStoreUnavailable):
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
		default:
			log.Printf("[ERROR] Me handler: user=%s err=%v", userID, err)
			httputil.WriteInternalError(w, "Failed to fetch user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user.Summary())
}

// ListUsers handles GET /users
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrStoreUnavailable) {
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
			return
		}
		log.Printf("[ERROR] ListUsers handler: %v", err)
		httputil.WriteInternalError(w, "Failed to list users")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, users)
}
