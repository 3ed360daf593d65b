package httpserver

import (
	"net/http"
	"time"

	"credo-app-go/internal/transport/httpserver/handler"
	"credo-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewCORS())
	r.Use(middleware.Metrics)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// The websocket route stays outside the timeout group; the
		// connection is long-lived by design.
		r.Get("/ws", handlers.WebSocket)

		r.Group(func(r chi.Router) {
			r.Use(chimw.Timeout(30 * time.Second))

			r.Get("/health", handlers.Health)
			r.Get("/recognitions", handlers.ListRecognitions)
			r.Post("/recognitions", handlers.CreateRecognition)
			r.Get("/team-members", handlers.ListTeamMembers)
			r.Get("/stats", handlers.GetStats)
		})
	})

	return r
}
