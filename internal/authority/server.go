package authority

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"

	"kambel/internal/config"
	"kambel/internal/logging"
	"kambel/internal/store"
)

// Server is the Content Authority HTTP API. It owns the canonical content
// store and serves every read/write endpoint under /api/.
type Server struct {
	bind      string
	principal string
	logger    *slog.Logger
	store     *store.Store
	handler   http.Handler

	listener net.Listener
	server   *http.Server
}

// New assembles the authority server around an open store.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) *Server {
	srv := &Server{
		bind:      strings.TrimSpace(cfg.Authority.Bind),
		principal: cfg.Site.Principal,
		logger:    logger,
		store:     st,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/publications/", srv.handlePublications)
	mux.HandleFunc("/api/categories/", srv.handleCategories)
	mux.HandleFunc("/api/consultancy/", srv.handleConsultancy)
	mux.HandleFunc("/api/blog/", srv.handleBlog)
	mux.HandleFunc("/api/contact/", srv.handleContact)
	mux.HandleFunc("/api/newsletter/", srv.handleNewsletter)
	mux.HandleFunc("/api/masterclasses/", srv.handleMasterclasses)
	mux.HandleFunc("/api/masterclass/register/", srv.handleRegister)
	mux.HandleFunc("/api/gallery/", srv.handleGallery)
	mux.HandleFunc("/api/kict/courses/", srv.handleKICTCourses)
	mux.HandleFunc("/api/site/config/", srv.handleSiteConfig)
	mux.HandleFunc("/api/site/hero/", srv.handleHeroConfig)
	mux.HandleFunc("/api/site/about/", srv.handleAboutConfig)
	mux.HandleFunc("/api/site/contact-info/", srv.handleContactInfo)
	mux.HandleFunc("/api/site/social-media/", srv.handleSocialMedia)
	mux.HandleFunc("/api/site/seo/", srv.handleSEO)
	mux.HandleFunc("/api/site/privacy-policy/", srv.handlePrivacyPolicy)
	mux.HandleFunc("/api/site/terms-conditions/", srv.handleTermsConditions)

	srv.handler = corsWrap(cfg.Authority.CORSOrigins, mux)
	srv.server = &http.Server{
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

func corsWrap(origins []string, next http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}
	if len(origins) == 0 {
		options.AllowedOrigins = []string{"*"}
	} else {
		options.AllowedOrigins = origins
	}
	return cors.New(options).Handler(next)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins serving until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("authority listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("authority server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("authority listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down outside of context cancellation.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.bind
	}
	return s.listener.Addr().String()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrSingletonExists):
		s.writeError(w, http.StatusConflict, err.Error())
	default:
		s.log().Error("store failure", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) log() *slog.Logger {
	return logging.WithComponent(s.logger, "authority")
}
