package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/braindump-app/braindump/pkg/usecase"
	"github.com/braindump-app/braindump/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	router       *chi.Mux
	uc           *usecase.UseCases
	maxUploadLen int64
}

type Options func(*Server)

// WithMaxUploadSize caps media uploads, in bytes.
func WithMaxUploadSize(n int64) Options {
	return func(s *Server) {
		s.maxUploadLen = n
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:       r,
		uc:           uc,
		maxUploadLen: 20 << 20,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/text", s.handleText)
		r.Post("/audio", s.handleAudio)
		r.Post("/image", s.handleImage)
		r.Post("/ask", s.handleAsk)

		r.Route("/actions", func(r chi.Router) {
			r.Get("/", s.handleListActions)
			r.Get("/search", s.handleSearchActions)
			r.Get("/{id}", s.handleGetAction)
			r.Delete("/{id}", s.handleDeleteAction)
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/", s.handleGetUser)
			r.Patch("/", s.handleUpdateUser)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Default().Warn("failed to encode response", "error", err)
	}
}
