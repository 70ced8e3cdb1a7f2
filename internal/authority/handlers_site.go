package authority

import (
	"errors"
	"net/http"
	"strings"

	"kambel/internal/content"
	"kambel/internal/store"
)

func (s *Server) handleSiteConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	cfg, err := s.store.SiteConfig(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		s.writeJSON(w, http.StatusOK, content.DefaultSiteConfig())
		return
	}
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleHeroConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	hero, err := s.store.HeroConfig(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		s.writeJSON(w, http.StatusOK, content.DefaultHeroConfig())
		return
	}
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, hero)
}

func (s *Server) handleAboutConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	about, err := s.store.AboutConfig(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		s.writeJSON(w, http.StatusOK, content.DefaultAboutConfig())
		return
	}
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, about)
}

func (s *Server) handleContactInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	cfg, err := s.store.SiteConfig(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		s.writeJSON(w, http.StatusOK, content.DefaultContactInfo())
		return
	}
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, content.ContactInfoFromSiteConfig(cfg))
}

func (s *Server) handleSocialMedia(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	links, err := s.store.SocialLinks(r.Context())
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, links)
}

func (s *Server) handleSEO(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	page := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/site/seo/"), "/")
	if page == "" || strings.Contains(page, "/") {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	s.writeJSON(w, http.StatusOK, content.DefaultSEO(page))
}

func (s *Server) handlePrivacyPolicy(w http.ResponseWriter, r *http.Request) {
	s.serveLegalPage(w, r, content.LegalKindPrivacy)
}

func (s *Server) handleTermsConditions(w http.ResponseWriter, r *http.Request) {
	s.serveLegalPage(w, r, content.LegalKindTerms)
}

func (s *Server) serveLegalPage(w http.ResponseWriter, r *http.Request, kind content.LegalKind) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	page, err := s.store.LegalPage(r.Context(), kind)
	if errors.Is(err, store.ErrNotFound) {
		s.writeJSON(w, http.StatusOK, content.DefaultLegalPage(kind))
		return
	}
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}
