package authority

import (
	"net/http"
	"strings"

	"kambel/internal/content"
)

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
	if _, err := s.store.CreateContactMessage(r.Context(), req); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Contact message submitted successfully"})
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
	email := strings.TrimSpace(req.Email)
	if email == "" {
		s.writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	status, err := s.store.SubscribeNewsletter(r.Context(), email)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": status.Message()})
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

	outcome, err := s.store.RegisterForMasterclass(r.Context(), req)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, content.RegistrationResult{
		Success:        true,
		Message:        "Registration submitted successfully! We'll contact you soon with further details.",
		RegistrationID: outcome.RegistrationID,
		Reference:      outcome.Reference,
	})
}
