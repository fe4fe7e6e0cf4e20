// Package rest exposes the StudyHub services over a JSON HTTP API.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/server/config"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	address      string
	svc          Services
	logger       logging.Logger
	jwtSecret    []byte
	cookieSecure bool
	origins      []string
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

func NewServer(cfg *config.Config, l logging.Logger, svc Services) *Server {
	return &Server{
		address:      cfg.HTTPAddr,
		svc:          svc,
		logger:       l.With("module", "http_server"),
		jwtSecret:    []byte(cfg.SecretKey),
		cookieSecure: cfg.CookieSecure,
		origins:      cfg.AllowedOrigins,
		accessTTL:    cfg.AccessTokenValidityDuration,
		refreshTTL:   cfg.RefreshTokenValidityDuration,
	}
}

// Handler returns the full middleware chain around the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.health)

	mux.HandleFunc("POST /api/auth/register", s.register)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("POST /api/auth/refresh", s.refresh)
	mux.HandleFunc("POST /api/auth/logout", s.logout)

	mux.HandleFunc("GET /api/me", s.requireAuth(s.me))
	mux.HandleFunc("PUT /api/me/username", s.requireAuth(s.updateUsername))

	mux.HandleFunc("GET /api/dashboard", s.requireAuth(s.dashboard))
	mux.HandleFunc("GET /api/search", s.requireAuth(s.search))
	mux.HandleFunc("GET /api/statistics", s.requireAuth(s.statistics))
	mux.HandleFunc("GET /api/notes/recent", s.requireAuth(s.recentNotes))

	mux.HandleFunc("GET /api/subjects", s.requireAuth(s.listSubjects))
	mux.HandleFunc("POST /api/subjects", s.requireAuth(s.createSubject))
	mux.HandleFunc("GET /api/subjects/{id}", s.requireAuth(s.getSubject))
	mux.HandleFunc("PUT /api/subjects/{id}", s.requireAuth(s.updateSubject))
	mux.HandleFunc("DELETE /api/subjects/{id}", s.requireAuth(s.deleteSubject))
	mux.HandleFunc("GET /api/subjects/{id}/notes", s.requireAuth(s.listNotes))
	mux.HandleFunc("POST /api/subjects/{id}/notes", s.requireAuth(s.createNote))

	mux.HandleFunc("GET /api/notes/{id}", s.requireAuth(s.getNote))
	mux.HandleFunc("PUT /api/notes/{id}", s.requireAuth(s.updateNote))
	mux.HandleFunc("DELETE /api/notes/{id}", s.requireAuth(s.deleteNote))
	mux.HandleFunc("POST /api/notes/{id}/pin", s.requireAuth(s.togglePin))
	mux.HandleFunc("GET /api/notes/{id}/export", s.requireAuth(s.exportNote))
	mux.HandleFunc("POST /api/notes/{id}/archive", s.requireAuth(s.archiveNote))

	c := cors.New(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	return s.withLogging(c.Handler(mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-done
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
