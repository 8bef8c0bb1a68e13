package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tglkwon/api.board.aquaco.work/internal/middleware"
	"github.com/tglkwon/api.board.aquaco.work/internal/middleware/metrics"
	"github.com/tglkwon/api.board.aquaco.work/internal/setup"
)

// New creates the chi router with all routes. Everything under /board needs a token.
func New(deps *setup.Dependencies) http.Handler {
	cfg := deps.Config.Public
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeadersWithCSP(cfg.Https, middleware.APIContentSecurityPolicy))

	// setup CORS for the web client
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", middleware.TokenHeader, "Authorization"},
		MaxAge:         300,
	}))

	h := deps.Handler

	// probes and metrics stay outside the request timeout
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(chimw.Timeout(cfg.RequestTimeout))
		}

		r.Post("/member", h.Register)
		r.Post("/member/login", h.Login)

		r.Route("/board", func(r chi.Router) {
			r.Use(deps.AuthMiddleware.NeedAuth())

			r.Get("/", h.ListPosts)
			r.Post("/", h.CreatePost)
			r.Get("/{no}", h.GetPost)
			r.Put("/{no}", h.UpdatePost)
			r.Delete("/{no}", h.DeletePost)

			r.Get("/{textNo}/reply", h.ListReplies)
			r.Post("/{textNo}/reply", h.CreateReply)
			r.Put("/{textNo}/reply/{replyNo}", h.UpdateReply)
			r.Delete("/{textNo}/reply/{replyNo}", h.DeleteReply)
		})
	})

	return r
}
