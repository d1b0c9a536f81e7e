package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"socialfit/internal/handler"
	"socialfit/internal/httputil"
	authmw "socialfit/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler        *handler.AuthHandler
	SocialHandler      *handler.SocialHandler
	InteractionHandler *handler.InteractionHandler
	MediaHandler       *handler.MediaHandler // nil disables avatar uploads
	JWTSecret          string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
	})

	// Public reads with optional authentication: a known viewer enriches the
	// response (is_followed_by_viewer, liked) but anonymous reads still work.
	r.Group(func(r chi.Router) {
		r.Use(authmw.OptionalAuthMiddleware(cfg.JWTSecret))

		r.Get("/users", cfg.AuthHandler.ListUsers)
		r.Get("/users/{id}/summary", cfg.SocialHandler.GetProfileSummary)
		r.Get("/users/{id}/counters", cfg.SocialHandler.GetCounters)
		r.Get("/activities/{id}/likes", cfg.InteractionHandler.GetLikes)
		r.Get("/activities/{id}/comments", cfg.InteractionHandler.ListComments)
	})

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Get("/me", cfg.AuthHandler.Me)

		r.Post("/users/{id}/follow", cfg.SocialHandler.Follow)
		r.Delete("/users/{id}/follow", cfg.SocialHandler.Unfollow)
		r.Get("/users/{id}/follow", cfg.SocialHandler.IsFollowing)

		r.Post("/activities/{id}/like", cfg.InteractionHandler.ToggleLike)
		r.Post("/activities/{id}/comments", cfg.InteractionHandler.AddComment)
		r.Delete("/activities/{id}/comments/{commentId}", cfg.InteractionHandler.RemoveComment)

		if cfg.MediaHandler != nil {
			r.Post("/media/avatar", cfg.MediaHandler.UploadAvatar)
		}
	})

	return r
}
