// Package router maps HTTP routes onto the handler factories.
//
// Route table:
//
//	GET    /health
//	POST   /api/students        → create a student
//	GET    /api/students        → list all students
//	GET    /api/students/{id}   → get one student
//	PUT    /api/students/{id}   → replace a student
//	DELETE /api/students/{id}   → delete a student
//	(the same five routes under /api/teams)
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aanand-mishra/roster-api/internal/config"
	"github.com/aanand-mishra/roster-api/internal/dispatch"
	"github.com/aanand-mishra/roster-api/internal/http/handlers/student"
	"github.com/aanand-mishra/roster-api/internal/http/handlers/team"
	"github.com/aanand-mishra/roster-api/internal/utils/response"
)

// New builds the root handler. d is the only dependency the routes need.
func New(d dispatch.Sender, cfg config.HTTPServer, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": response.StatusOK})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/students", func(r chi.Router) {
			r.Post("/", student.New(d))
			r.Get("/", student.GetList(d))
			r.Get("/{id}", student.GetByID(d))
			r.Put("/{id}", student.Update(d))
			r.Delete("/{id}", student.Delete(d))
		})

		r.Route("/teams", func(r chi.Router) {
			r.Post("/", team.New(d))
			r.Get("/", team.GetList(d))
			r.Get("/{id}", team.GetByID(d))
			r.Put("/{id}", team.Update(d))
			r.Delete("/{id}", team.Delete(d))
		})
	})

	return r
}

// requestLogger writes one structured line per request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info("http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("elapsed", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
