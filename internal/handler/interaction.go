package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfit/internal/httputil"
	"socialfit/internal/model"
	"socialfit/internal/service"
	"socialfit/internal/transport/http/middleware"
)

type InteractionHandler struct {
	socialService *service.SocialService
	authService   *service.AuthService
}

func NewInteractionHandler(socialService *service.SocialService, authService *service.AuthService) *InteractionHandler {
	return &InteractionHandler{
		socialService: socialService,
		authService:   authService,
	}
}

// ToggleLike handles POST /activities/{id}/like
func (h *InteractionHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	activityID := chi.URLParam(r, "id")
	status, err := h.socialService.ToggleLike(r.Context(), activityID, userID)
	if err != nil {
		if errors.Is(err, model.ErrStoreUnavailable) {
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
			return
		}
		log.Printf("[ERROR] ToggleLike handler: activity=%s user=%s err=%v", activityID, userID, err)
		httputil.WriteInternalError(w, "Failed to toggle like")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, status)
}

// GetLikes handles GET /activities/{id}/likes
// Returns the like count, plus whether the viewer liked it when authenticated.
func (h *InteractionHandler) GetLikes(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")

	total, err := h.socialService.TotalLikes(r.Context(), activityID)
	if err != nil {
		if errors.Is(err, model.ErrStoreUnavailable) {
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
			return
		}
		log.Printf("[ERROR] GetLikes handler: activity=%s err=%v", activityID, err)
		httputil.WriteInternalError(w, "Failed to fetch likes")
		return
	}

	liked := false
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		liked, err = h.socialService.IsLiked(r.Context(), activityID, userID)
		if err != nil {
			if errors.Is(err, model.ErrStoreUnavailable) {
				httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
				return
			}
			log.Printf("[ERROR] GetLikes handler: activity=%s user=%s err=%v", activityID, userID, err)
			httputil.WriteInternalError(w, "Failed to fetch likes")
			return
		}
	}

	httputil.WriteJSON(w, http.StatusOK, model.LikeStatus{Liked: liked, TotalLikes: total})
}

// AddComment handles POST /activities/{id}/comments
// The author's name and avatar are resolved from the directory so callers
// cannot spoof them.
func (h *InteractionHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	activityID := chi.URLParam(r, "id")

	var req model.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	author, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteUnauthorized(w, "Unknown user")
		case errors.Is(err, model.ErrStoreUnavailable):
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
		default:
			log.Printf("[ERROR] AddComment handler: user=%s err=%v", userID, err)
			httputil.WriteInternalError(w, "Failed to add comment")
		}
		return
	}

	comment, err := h.socialService.AddComment(r.Context(), activityID, userID, req.Text, author.Name, author.AvatarURL)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyComment):
			httputil.WriteBadRequest(w, "Comment text is required")
		case errors.Is(err, model.ErrStoreUnavailable):
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
		default:
			log.Printf("[ERROR] AddComment handler: activity=%s user=%s err=%v", activityID, userID, err)
			httputil.WriteInternalError(w, "Failed to add comment")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, comment)
}

// ListComments handles GET /activities/{id}/comments
func (h *InteractionHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")

	comments, err := h.socialService.ListComments(r.Context(), activityID)
	if err != nil {
		if errors.Is(err, model.ErrStoreUnavailable) {
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
			return
		}
		log.Printf("[ERROR] ListComments handler: activity=%s err=%v", activityID, err)
		httputil.WriteInternalError(w, "Failed to list comments")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, comments)
}

// RemoveComment handles DELETE /activities/{id}/comments/{commentId}
func (h *InteractionHandler) RemoveComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	activityID := chi.URLParam(r, "id")
	commentID := chi.URLParam(r, "commentId")

	err := h.socialService.RemoveComment(r.Context(), activityID, commentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCommentNotFound):
			httputil.WriteNotFound(w, "Comment not found")
		case errors.Is(err, model.ErrNotCommentOwner):
			httputil.WriteForbidden(w, "You can only delete your own comments")
		case errors.Is(err, model.ErrStoreUnavailable):
			httputil.WriteServiceUnavailable(w, "Storage backend unavailable")
		default:
			log.Printf("[ERROR] RemoveComment handler: activity=%s comment=%s user=%s err=%v",
				activityID, commentID, userID, err)
			httputil.WriteInternalError(w, "Failed to remove comment")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Comment deleted successfully",
	})
}
