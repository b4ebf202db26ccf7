package server

import (
	"io"
	"net/http"

	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/render"
	"github.com/jonathan/cv-studio/internal/store"
)

// ---------------------------------------------------------------------
// Document Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	var data []byte
	var err error
	s.state.Read(func(doc *document.Document) {
		data, err = store.Serialize(doc)
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to serialize document: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

func (s *Server) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	doc, err := store.Deserialize(body)
	if err != nil {
		s.domainError(w, err)
		return
	}

	if err := s.state.Replace(doc); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save document: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleGetPreview(w http.ResponseWriter, _ *http.Request) {
	var html string
	s.state.Read(func(doc *document.Document) {
		html = render.Preview(doc)
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html)) //nolint:errcheck
}

// ---------------------------------------------------------------------
// Section Handlers
// ---------------------------------------------------------------------

type CreateSectionRequest struct {
	Type string `json:"type" validate:"required"`
}

func (s *Server) handleCreateSection(w http.ResponseWriter, r *http.Request) {
	var req CreateSectionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	var created document.Section
	err := s.state.Update(func(doc *document.Document) error {
		created = document.NewSection(document.SectionType(req.Type))
		doc.Sections = append(doc.Sections, created)
		created = document.CloneSection(created)
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

type UpdateSectionRequest struct {
	Title   *string         `json:"title,omitempty"`
	Visible *bool           `json:"visible,omitempty"`
	Type    *string         `json:"type,omitempty"`
	Content *string         `json:"content,omitempty"`
	Items   []document.Item `json:"items,omitempty"`
	Confirm bool            `json:"confirm,omitempty"`
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateSectionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	var updated document.Section
	err := s.state.Update(func(doc *document.Document) error {
		sec := doc.Section(id)
		if sec == nil {
			return &ErrSectionNotFound{ID: id}
		}

		if req.Type != nil && document.SectionType(*req.Type) != sec.Type {
			// Changing the shape discards the old field, so sections that
			// still hold content need an explicit confirm.
			if document.SectionHasContent(*sec) && !req.Confirm {
				return &ErrConfirmRequired{Operation: "change section type"}
			}
			document.ChangeSectionType(sec, document.SectionType(*req.Type))
		}

		if req.Title != nil {
			sec.Title = *req.Title
		}
		if req.Visible != nil {
			sec.Visible = *req.Visible
		}
		if req.Content != nil {
			sec.Content = *req.Content
		}
		if req.Items != nil {
			sec.Items = req.Items
		}

		doc.Normalize()
		updated = document.CloneSection(*doc.Section(id))
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	confirm := r.URL.Query().Get("confirm") == "true"

	err := s.state.Update(func(doc *document.Document) error {
		sec := doc.Section(id)
		if sec == nil {
			return &ErrSectionNotFound{ID: id}
		}
		if document.SectionHasContent(*sec) && !confirm {
			return &ErrConfirmRequired{Operation: "delete section"}
		}
		doc.RemoveSection(id)
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleDuplicateSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var dup document.Section
	err := s.state.Update(func(doc *document.Document) error {
		idx := -1
		for i := range doc.Sections {
			if doc.Sections[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return &ErrSectionNotFound{ID: id}
		}

		// Insert the copy directly after the original.
		dup = document.DuplicateSection(doc.Sections[idx])
		doc.Sections = append(doc.Sections, document.Section{})
		copy(doc.Sections[idx+2:], doc.Sections[idx+1:])
		doc.Sections[idx+1] = dup
		dup = document.CloneSection(dup)
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, dup)
}

type MoveSectionRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

func (s *Server) handleMoveSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req MoveSectionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	dir := document.MoveUp
	if req.Direction == "down" {
		dir = document.MoveDown
	}

	var moved bool
	err := s.state.Update(func(doc *document.Document) error {
		if doc.Section(id) == nil {
			return &ErrSectionNotFound{ID: id}
		}
		moved = doc.MoveSection(id, dir)
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}

	// An edge move is a no-op, not an error.
	s.jsonResponse(w, http.StatusOK, map[string]bool{"moved": moved})
}

// ---------------------------------------------------------------------
// Item Handlers
// ---------------------------------------------------------------------

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var added document.Item
	err := s.state.Update(func(doc *document.Document) error {
		sec := doc.Section(id)
		if sec == nil {
			return &ErrSectionNotFound{ID: id}
		}
		item := document.AddItem(sec)
		if item == nil {
			return &ErrValidation{Field: "type", Message: "section does not hold items"}
		}
		added = *item
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, added)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	itemID := r.PathValue("item_id")
	confirm := r.URL.Query().Get("confirm") == "true"

	err := s.state.Update(func(doc *document.Document) error {
		sec := doc.Section(id)
		if sec == nil {
			return &ErrSectionNotFound{ID: id}
		}
		for _, item := range sec.Items {
			if item.ID == itemID && document.ItemHasContent(item) && !confirm {
				return &ErrConfirmRequired{Operation: "delete item"}
			}
		}
		if !document.RemoveItem(sec, itemID) {
			return &ErrItemNotFound{SectionID: id, ItemID: itemID}
		}
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
