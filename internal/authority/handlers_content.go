package authority

import (
	"net/http"
	"strconv"
	"strings"

	"kambel/internal/content"
	"kambel/internal/store"
)

func (s *Server) handlePublications(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/publications/"), "/")
	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			s.listPublications(w, r)
		case http.MethodPost:
			s.createPublication(w, r)
		default:
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid publication id")
		return
	}
	switch r.Method {
	case http.MethodPut:
		s.updatePublication(w, r, id)
	case http.MethodDelete:
		s.deletePublication(w, r, id)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listPublications(w http.ResponseWriter, r *http.Request) {
	publications, err := s.store.ListPublications(r.Context())
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, publications)
}

type publicationPayload struct {
	Title         *string  `json:"title"`
	Author        *string  `json:"author"`
	Description   *string  `json:"description"`
	CategoryID    *int64   `json:"category_id"`
	Pages         *int     `json:"pages"`
	Price         *float64 `json:"price"`
	CoverImageURL *string  `json:"cover_image_url"`
	PurchaseLink  *string  `json:"purchase_link"`
}

func (s *Server) createPublication(w http.ResponseWriter, r *http.Request) {
	var payload publicationPayload
	if !s.decodeBody(w, r, &payload) {
		return
	}
	if payload.Title == nil || strings.TrimSpace(*payload.Title) == "" {
		s.writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	params := store.PublicationParams{
		Title:  strings.TrimSpace(*payload.Title),
		Author: s.principal,
	}
	if params.Author == "" {
		params.Author = content.DefaultAuthor
	}
	if payload.Author != nil && strings.TrimSpace(*payload.Author) != "" {
		params.Author = strings.TrimSpace(*payload.Author)
	}
	if payload.Description != nil {
		params.Description = *payload.Description
	}
	params.CategoryID = payload.CategoryID
	if payload.Pages != nil {
		params.Pages = *payload.Pages
	}
	if payload.Price != nil {
		params.Price = *payload.Price
	}
	if payload.CoverImageURL != nil {
		params.CoverImageURL = *payload.CoverImageURL
	}
	if payload.PurchaseLink != nil {
		params.PurchaseLink = *payload.PurchaseLink
	}

	id, err := s.store.CreatePublication(r.Context(), params)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Publication created successfully",
		"id":      id,
	})
}

func (s *Server) updatePublication(w http.ResponseWriter, r *http.Request, id int64) {
	var payload publicationPayload
	if !s.decodeBody(w, r, &payload) {
		return
	}
	update := store.PublicationUpdate{
		Title:         payload.Title,
		Author:        payload.Author,
		Description:   payload.Description,
		CategoryID:    payload.CategoryID,
		Pages:         payload.Pages,
		Price:         payload.Price,
		CoverImageURL: payload.CoverImageURL,
		PurchaseLink:  payload.PurchaseLink,
	}
	if err := s.store.UpdatePublication(r.Context(), id, update); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Publication updated successfully"})
}

func (s *Server) deletePublication(w http.ResponseWriter, r *http.Request, id int64) {
	if err := s.store.DeletePublication(r.Context(), id); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Publication deleted successfully"})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	categories, err := s.store.ListCategories(r.Context())
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleConsultancy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	services, err := s.store.ListServices(r.Context())
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, services)
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	posts, err := s.store.ListBlogPosts(r.Context())
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleMasterclasses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	list, err := s.store.ListMasterclasses(r.Context())
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	featured := strings.EqualFold(r.URL.Query().Get("featured"), "true")
	items, err := s.store.ListGallery(r.Context(), featured)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleKICTCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	// No course catalog yet; the shape is fixed for the front-end.
	s.writeJSON(w, http.StatusOK, []content.KICTCourse{})
}
