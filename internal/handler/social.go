package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfit/internal/httputil"
	"socialfit/internal/model"
	"socialfit/internal/service"
	"socialfit/internal/transport/http/middleware"
)

type SocialHandler struct {
	socialService *service.SocialService
}

func NewSocialHandler(socialService *service.SocialService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

// Follow handles POST /users/{id}/follow
func (h *SocialHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	followeeID := chi.URLParam(r, "id")
	if followeeID == "" {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	if err := h.socialService.Follow(r.Context(), followerID, followeeID); err != nil {
		switch {
		case errors.Is(err, model.ErrCannotFollowSelf):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrAlreadyFollowing):
			httputil.WriteConflict(w, err.Error())
		case errors.Is(err, model.ErrStoreUnavailable):
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
		default:
			log.Printf("[ERROR] Follow handler: %v", err)
			httputil.WriteInternalError(w, "Failed to follow user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully followed user",
	})
}

// Unfollow handles DELETE /users/{id}/follow
func (h *SocialHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	followeeID := chi.URLParam(r, "id")
	if followeeID == "" {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	if err := h.socialService.Unfollow(r.Context(), followerID, followeeID); err != nil {
		switch {
		case errors.Is(err, model.ErrNotFollowing):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, model.ErrStoreUnavailable):
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
		default:
			log.Printf("[ERROR] Unfollow handler: %v", err)
			httputil.WriteInternalError(w, "Failed to unfollow user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully unfollowed user",
	})
}

// IsFollowing handles GET /users/{id}/follow
func (h *SocialHandler) IsFollowing(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	followeeID := chi.URLParam(r, "id")
	following, err := h.socialService.IsFollowing(r.Context(), followerID, followeeID)
	if err != nil {
		if errors.Is(err, model.ErrStoreUnavailable) {
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
			return
		}
		log.Printf("[ERROR] IsFollowing handler: %v", err)
		httputil.WriteInternalError(w, "Failed to check follow status")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"following": following})
}

// GetCounters handles GET /users/{id}/counters
func (h *SocialHandler) GetCounters(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	counters, err := h.socialService.Counters(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrStoreUnavailable) {
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
			return
		}
		log.Printf("[ERROR] GetCounters handler: user=%s err=%v", userID, err)
		httputil.WriteInternalError(w, "Failed to fetch counters")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, counters)
}

// GetProfileSummary handles GET /users/{id}/summary
func (h *SocialHandler) GetProfileSummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var viewerID *string
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		viewerID = &id
	}

	summary, err := h.socialService.GetProfileSummary(r.Context(), userID, viewerID)
	if err != nil {
		if errors.Is(err, model.ErrStoreUnavailable) {
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
			return
		}
		log.Printf("[ERROR] GetProfileSummary handler: user=%s err=%v", userID, err)
		httputil.WriteInternalError(w, "Failed to fetch profile summary")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, summary)
}
