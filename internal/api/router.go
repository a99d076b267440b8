package api

import (
	"net/http"

	"github.com/alexdoyle/rivals-team-builder/internal/api/handlers"
	"github.com/alexdoyle/rivals-team-builder/internal/api/middleware"
	"github.com/alexdoyle/rivals-team-builder/internal/service"
	"github.com/alexdoyle/rivals-team-builder/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	heroHandler := handlers.NewHeroHandler(services.Hero)
	teamHandler := handlers.NewTeamHandler(services.Team)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Hero routes (read-only; data comes from the seed command)
		r.Route("/heroes", func(r chi.Router) {
			r.Get("/", heroHandler.GetAll)
			r.Get("/role/{role}", heroHandler.GetByRole)
			r.Get("/{id}", heroHandler.Get)
		})

		// Team routes
		r.Route("/teams", func(r chi.Router) {
			// Public reads, with an optional token feeding the
			// per-user vote flags.
			r.Group(func(r chi.Router) {
				r.Use(middleware.OptionalAuth(services.Auth))
				r.Get("/", teamHandler.GetAll)
				r.Get("/{slug}", teamHandler.Get)
			})
			r.Get("/{slug}/comments", teamHandler.GetComments)

			// Protected writes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", teamHandler.Create)
				r.Patch("/{slug}", teamHandler.Update)
				r.Delete("/{slug}", teamHandler.Delete)
				r.Post("/{slug}/vote", teamHandler.Vote)
				r.Post("/{slug}/comments", teamHandler.CreateComment)
			})
		})

		// User routes
		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Get("/me/teams", teamHandler.GetMine)
		})
	})

	// Live comment stream
	r.Get("/ws/teams/{slug}/comments", wsHandler.HandleTeamComments)

	return r
}
