package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/cv-studio/internal/ai"
	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/settings"
)

// ---------------------------------------------------------------------
// AI Handlers
// ---------------------------------------------------------------------

type AnalyzeRequest struct {
	Language string `json:"language,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		s.domainError(w, &ai.MissingKeyError{})
		return
	}

	var req AnalyzeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	analysis, err := s.engine.Analyze(r.Context(), s.state.Snapshot(), s.responseLanguage(req.Language))
	if err != nil {
		s.handleAIError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

type EnhanceRequest struct {
	ItemID   string `json:"item_id,omitempty"`
	Language string `json:"language,omitempty"`
	Apply    bool   `json:"apply,omitempty"`
}

type EnhanceResponse struct {
	Suggestion string `json:"suggestion"`
	Applied    bool   `json:"applied"`
}

func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		s.domainError(w, &ai.MissingKeyError{})
		return
	}

	id := r.PathValue("id")

	var req EnhanceRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	var target *document.Section
	s.state.Read(func(doc *document.Document) {
		if sec := doc.Section(id); sec != nil {
			copied := document.CloneSection(*sec)
			target = &copied
		}
	})
	if target == nil {
		s.domainError(w, &ErrSectionNotFound{ID: id})
		return
	}

	suggestion, err := s.engine.Enhance(r.Context(), *target, req.ItemID, s.responseLanguage(req.Language))
	if err != nil {
		s.handleAIError(w, err)
		return
	}

	resp := EnhanceResponse{Suggestion: suggestion}
	if req.Apply {
		err := s.state.Update(func(doc *document.Document) error {
			sec := doc.Section(id)
			if sec == nil {
				return &ErrSectionNotFound{ID: id}
			}
			// Skills suggestions stay advisory and are never written back.
			resp.Applied = ai.ApplyEnhancement(sec, req.ItemID, suggestion)
			return nil
		})
		if err != nil {
			s.domainError(w, err)
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// responseLanguage falls back to the stored display-language preference
// when the request does not name one.
func (s *Server) responseLanguage(requested string) string {
	if requested != "" || s.settings == nil {
		return requested
	}
	stored, err := s.settings.Get(settings.KeyLanguage)
	if err != nil {
		log.Printf("[settings] failed to read stored language preference: %v", err)
		return ""
	}
	return stored
}

// handleAIError writes the error response and, on an authentication
// failure, discards the stored key so the next run prompts for a new one.
func (s *Server) handleAIError(w http.ResponseWriter, err error) {
	var authErr *ai.AuthError
	if errors.As(err, &authErr) && s.settings != nil {
		if delErr := s.settings.Delete(settings.KeyAPIKey); delErr != nil {
			log.Printf("[settings] failed to clear stored API key: %v", delErr)
		} else {
			log.Printf("[settings] cleared stored API key after authentication failure")
		}
	}
	s.domainError(w, err)
}
