package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/cors"

	"kambel/internal/config"
	"kambel/internal/content"
	"kambel/internal/logging"
)

// Server is the Presentation Proxy. It owns no data: every read fetches
// from the authority, reshapes for the browser, and falls back to the
// registered defaults when the authority is unreachable. Writes are
// validated locally, forwarded upstream, and logged to the fallback log
// when forwarding fails.
type Server struct {
	bind      string
	principal string
	logger    *slog.Logger
	client    *Client
	fallback  *FallbackLog
	handler   http.Handler

	listener net.Listener
	server   *http.Server
}

// New assembles the proxy around an authority client and fallback log.
func New(cfg *config.Config, client *Client, fallback *FallbackLog, logger *slog.Logger) *Server {
	srv := &Server{
		bind:      strings.TrimSpace(cfg.Web.Bind),
		principal: cfg.Site.Principal,
		logger:    logger,
		client:    client,
		fallback:  fallback,
	}

	mux := http.NewServeMux()
	srv.route(mux, "/api/publications", srv.handlePublications)
	srv.route(mux, "/api/categories", srv.handleCategories)
	srv.route(mux, "/api/blog", srv.handleBlog)
	srv.route(mux, "/api/consultancy", srv.handleConsultancy)
	srv.route(mux, "/api/masterclasses", srv.handleMasterclasses)
	srv.route(mux, "/api/kict/courses", srv.handleKICTCourses)
	srv.route(mux, "/api/gallery", srv.handleGallery)
	srv.route(mux, "/api/site/config", srv.siteHandler("/api/site/config/", content.TypeSiteConfig))
	srv.route(mux, "/api/site/hero", srv.siteHandler("/api/site/hero/", content.TypeHeroConfig))
	srv.route(mux, "/api/site/about", srv.siteHandler("/api/site/about/", content.TypeAboutConfig))
	srv.route(mux, "/api/site/contact-info", srv.siteHandler("/api/site/contact-info/", content.TypeContactInfo))
	srv.route(mux, "/api/site/social-media", srv.siteHandler("/api/site/social-media/", content.TypeSocialLinks))
	srv.route(mux, "/api/site/privacy-policy", srv.siteHandler("/api/site/privacy-policy/", content.TypePrivacyPolicy))
	srv.route(mux, "/api/site/terms-conditions", srv.siteHandler("/api/site/terms-conditions/", content.TypeTermsConditions))
	mux.HandleFunc("/api/site/seo/", srv.handleSEO)
	srv.route(mux, "/api/contact", srv.handleContact)
	srv.route(mux, "/api/newsletter", srv.handleNewsletter)
	srv.route(mux, "/api/masterclass/register", srv.handleRegister)

	srv.handler = corsWrap(cfg.Web.CORSOrigins, mux)
	srv.server = &http.Server{
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

// route registers a handler for both the bare path and its subtree, so
// /api/blog and /api/blog/3 reach the same handler.
func (s *Server) route(mux *http.ServeMux, path string, handler http.HandlerFunc) {
	mux.HandleFunc(path, handler)
	mux.HandleFunc(path+"/", handler)
}

func corsWrap(origins []string, next http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
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
		return fmt.Errorf("web listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("web server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("web listening", logging.String("address", listener.Addr().String()))
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

// serveDefault writes the registered default payload for a content type.
func (s *Server) serveDefault(w http.ResponseWriter, t content.Type) {
	payload, err := content.Fallback(t)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, payload)
}

// siteHandler builds a pass-through handler that forwards the upstream
// payload verbatim and serves the registered default on failure.
func (s *Server) siteHandler(upstreamPath string, t content.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		var raw json.RawMessage
		if err := s.client.GetJSON(r.Context(), upstreamPath, &raw); err != nil {
			s.logFetchFailure(upstreamPath, err)
			s.serveDefault(w, t)
			return
		}
		s.writeJSON(w, http.StatusOK, raw)
	}
}

// pathSuffix extracts the remainder after prefix, trimmed of slashes.
func pathSuffix(r *http.Request, prefix string) string {
	suffix := strings.TrimPrefix(r.URL.Path, prefix)
	return strings.Trim(suffix, "/")
}

func (s *Server) logFetchFailure(path string, err error) {
	s.log().Warn("authority fetch failed, serving defaults",
		logging.String("path", path), logging.Error(err))
}

func (s *Server) handlePublications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	bucket := pathSuffix(r, "/api/publications")
	if bucket != "" && !KnownBucket(bucket) {
		s.writeError(w, http.StatusNotFound, "Category not found")
		return
	}

	buckets := s.fetchPublications(r.Context())
	if bucket == "" {
		s.writeJSON(w, http.StatusOK, buckets)
		return
	}
	books, _ := bucketSlice(buckets, bucket)
	s.writeJSON(w, http.StatusOK, books)
}

func (s *Server) fetchPublications(ctx context.Context) content.PublicationBuckets {
	var records []upstreamPublication
	if err := s.client.GetJSON(ctx, "/api/publications/", &records); err != nil {
		s.logFetchFailure("/api/publications/", err)
		return content.NewPublicationBuckets()
	}
	return reshapePublications(records, s.principal)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var raw json.RawMessage
	if err := s.client.GetJSON(r.Context(), "/api/categories/", &raw); err != nil {
		s.logFetchFailure("/api/categories/", err)
		s.serveDefault(w, content.TypeCategories)
		return
	}
	s.writeJSON(w, http.StatusOK, raw)
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	entries := s.fetchBlog(r.Context())

	suffix := pathSuffix(r, "/api/blog")
	if suffix == "" {
		s.writeJSON(w, http.StatusOK, entries)
		return
	}
	id, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	for _, entry := range entries {
		if entry.ID == id {
			s.writeJSON(w, http.StatusOK, entry)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "Post not found")
}

func (s *Server) fetchBlog(ctx context.Context) []content.BlogEntry {
	var posts []content.BlogPost
	if err := s.client.GetJSON(ctx, "/api/blog/", &posts); err != nil {
		s.logFetchFailure("/api/blog/", err)
		return []content.BlogEntry{}
	}
	return reshapeBlog(posts)
}

func (s *Server) handleConsultancy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var raw json.RawMessage
	if err := s.client.GetJSON(r.Context(), "/api/consultancy/", &raw); err != nil {
		s.logFetchFailure("/api/consultancy/", err)
		s.serveDefault(w, content.TypeConsultancy)
		return
	}
	s.writeJSON(w, http.StatusOK, raw)
}

func (s *Server) handleMasterclasses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	sessions := s.fetchMasterclasses(r.Context())

	suffix := pathSuffix(r, "/api/masterclasses")
	if suffix == "" {
		s.writeJSON(w, http.StatusOK, sessions)
		return
	}
	id, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "Masterclass not found")
		return
	}
	if session, ok := findSession(sessions, id); ok {
		s.writeJSON(w, http.StatusOK, session)
		return
	}
	s.writeError(w, http.StatusNotFound, "Masterclass not found")
}

func (s *Server) fetchMasterclasses(ctx context.Context) content.MasterclassSessions {
	var list content.MasterclassList
	if err := s.client.GetJSON(ctx, "/api/masterclasses/", &list); err != nil {
		s.logFetchFailure("/api/masterclasses/", err)
		return content.MasterclassSessions{
			Upcoming: []content.MasterclassSession{},
			Previous: []content.MasterclassSession{},
		}
	}
	return reshapeMasterclasses(list)
}

func (s *Server) handleKICTCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var raw json.RawMessage
	if err := s.client.GetJSON(r.Context(), "/api/kict/courses/", &raw); err != nil {
		s.logFetchFailure("/api/kict/courses/", err)
		s.serveDefault(w, content.TypeKICTCourses)
		return
	}
	s.writeJSON(w, http.StatusOK, raw)
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	path := "/api/gallery/"
	if r.URL.Query().Get("featured") == "true" {
		path += "?featured=true"
	}
	var raw json.RawMessage
	if err := s.client.GetJSON(r.Context(), path, &raw); err != nil {
		s.logFetchFailure(path, err)
		s.serveDefault(w, content.TypeGallery)
		return
	}
	s.writeJSON(w, http.StatusOK, raw)
}

func (s *Server) handleSEO(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	page := pathSuffix(r, "/api/site/seo")
	if page == "" || strings.Contains(page, "/") {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	upstreamPath := "/api/site/seo/" + page + "/"
	var raw json.RawMessage
	if err := s.client.GetJSON(r.Context(), upstreamPath, &raw); err != nil {
		s.logFetchFailure(upstreamPath, err)
		s.writeJSON(w, http.StatusOK, content.DefaultSEO(page))
		return
	}
	s.writeJSON(w, http.StatusOK, raw)
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req content.ContactRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if field := firstMissingContactField(req); field != "" {
		s.writeError(w, http.StatusBadRequest, field+" is required")
		return
	}
	s.forwardOrLog(r.Context(), w, "/api/contact/", "contact_messages", req,
		map[string]string{"message": "Contact message submitted successfully"})
}

func firstMissingContactField(req content.ContactRequest) string {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return "name"
	case strings.TrimSpace(req.Email) == "":
		return "email"
	case strings.TrimSpace(req.Subject) == "":
		return "subject"
	case strings.TrimSpace(req.Message) == "":
		return "message"
	}
	return ""
}

func (s *Server) handleNewsletter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req content.NewsletterRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		s.writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	s.forwardOrLog(r.Context(), w, "/api/newsletter/", "newsletter_subscriptions", req,
		map[string]string{"message": "Successfully subscribed to newsletter"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req content.RegistrationRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	switch {
	case strings.TrimSpace(req.FirstName) == "":
		s.writeError(w, http.StatusBadRequest, "first_name is required")
		return
	case strings.TrimSpace(req.Email) == "":
		s.writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	status, body, err := s.client.PostJSON(r.Context(), "/api/masterclass/register/", req)
	if err == nil && is2xx(status) {
		s.relay(w, status, body)
		return
	}
	if err == nil {
		err = fmt.Errorf("%w: post /api/masterclass/register/: status %d", ErrUpstream, status)
	}

	recordID, logErr := s.fallback.Append("masterclass_registrations", req)
	if logErr != nil {
		s.log().Error("fallback log write failed", logging.Error(logErr))
		s.writeJSON(w, http.StatusInternalServerError, content.RegistrationResult{
			Success: false,
			Message: "Unable to submit registration. Please try again later.",
		})
		return
	}
	s.log().Warn("registration queued to fallback log",
		logging.String("record_id", recordID), logging.Error(err))
	s.writeJSON(w, http.StatusOK, content.RegistrationResult{
		Success:   true,
		Message:   "Registration submitted successfully! We'll contact you soon with further details.",
		Reference: recordID,
	})
}

// forwardOrLog posts the payload upstream and relays a 2xx response. Any
// other outcome, unreachable authority or an upstream error status, sends
// the payload to the fallback log and the visitor still gets the accepted
// response.
func (s *Server) forwardOrLog(ctx context.Context, w http.ResponseWriter, upstreamPath, kind string, payload any, accepted map[string]string) {
	status, body, err := s.client.PostJSON(ctx, upstreamPath, payload)
	if err == nil && is2xx(status) {
		s.relay(w, status, body)
		return
	}
	if err == nil {
		err = fmt.Errorf("%w: post %s: status %d", ErrUpstream, upstreamPath, status)
	}

	recordID, logErr := s.fallback.Append(kind, payload)
	if logErr != nil {
		s.log().Error("fallback log write failed", logging.Error(logErr))
		s.writeError(w, http.StatusInternalServerError, "submission could not be stored")
		return
	}
	s.log().Warn("submission queued to fallback log",
		logging.String("kind", kind), logging.String("record_id", recordID), logging.Error(err))
	s.writeJSON(w, http.StatusOK, accepted)
}

func is2xx(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// relay copies an upstream response through unchanged.
func (s *Server) relay(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.log().Error("failed to relay response", logging.Error(err))
	}
}

func (s *Server) log() *slog.Logger {
	return logging.WithComponent(s.logger, "web")
}
