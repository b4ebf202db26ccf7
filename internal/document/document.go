package document

import (
	"strings"

	"github.com/google/uuid"
)

// NewSection allocates a fresh section of the given type with registry
// defaults: a stable id, the default title, and either placeholder content
// or a single empty item depending on shape.
func NewSection(t SectionType) Section {
	sec := Section{
		ID:      uuid.NewString(),
		Type:    t,
		Title:   DefaultTitle(t),
		Visible: true,
	}
	if ShapeOf(t) == ShapeList {
		sec.Items = DefaultItems(t)
	} else {
		sec.Content = DefaultContent(t)
	}
	return sec
}

// ChangeSectionType converts a section to a new type in place. The field
// inappropriate for the new shape is dropped and the other is reinitialized
// from registry defaults; the title resets to the new type's default. The
// section id is preserved. Callers gate this on SectionHasContent and user
// confirmation before discarding non-default content.
func ChangeSectionType(sec *Section, newType SectionType) {
	sec.Type = newType
	sec.Title = DefaultTitle(newType)
	if ShapeOf(newType) == ShapeList {
		sec.Content = ""
		sec.Items = DefaultItems(newType)
	} else {
		sec.Items = nil
		sec.Content = DefaultContent(newType)
	}
}

// DuplicateSection deep-copies a section, assigning a new id to the copy
// and to every item within it. Ids are never reused: they key rendering
// and synchronization, so a duplicate sharing any id would alias state.
func DuplicateSection(sec Section) Section {
	dup := sec
	dup.ID = uuid.NewString()
	if sec.Items != nil {
		dup.Items = make([]Item, len(sec.Items))
		for i, item := range sec.Items {
			copied := item
			copied.ID = uuid.NewString()
			if item.Skills != nil {
				copied.Skills = append([]string(nil), item.Skills...)
			}
			dup.Items[i] = copied
		}
	}
	return dup
}

// CloneSection deep-copies a section, ids included.
func CloneSection(sec Section) Section {
	dup := sec
	if sec.Items != nil {
		dup.Items = make([]Item, len(sec.Items))
		for i, item := range sec.Items {
			copied := item
			if item.Skills != nil {
				copied.Skills = append([]string(nil), item.Skills...)
			}
			dup.Items[i] = copied
		}
	}
	return dup
}

// Clone deep-copies the document, ids included.
func (d *Document) Clone() *Document {
	out := *d
	if d.PersonalInfo.Websites != nil {
		out.PersonalInfo.Websites = append([]Website(nil), d.PersonalInfo.Websites...)
	}
	out.Sections = make([]Section, len(d.Sections))
	for i, sec := range d.Sections {
		out.Sections[i] = CloneSection(sec)
	}
	return &out
}

// ItemHasContent reports whether any non-id field of the item is non-empty
func ItemHasContent(item Item) bool {
	fields := []string{
		item.Company, item.Position, item.Duration, item.Location, item.Description,
		item.Institution, item.Degree, item.Year, item.Details,
		item.Category,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return true
		}
	}
	for _, s := range item.Skills {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// SectionHasContent reports whether the section holds user-entered data:
// any item with a non-empty field, or text content differing from the
// type's default placeholder. Used to gate destructive-action confirmations
// and empty-section placeholders.
func SectionHasContent(sec Section) bool {
	if ShapeOf(sec.Type) == ShapeList {
		for _, item := range sec.Items {
			if ItemHasContent(item) {
				return true
			}
		}
		return false
	}
	content := strings.TrimSpace(sec.Content)
	return content != "" && content != DefaultContent(sec.Type)
}

// MoveDirection is the direction of a section reorder
type MoveDirection string

// Move directions
const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// MoveSection swaps the identified section with its neighbor in the given
// direction. It returns false when the section is already at the edge or
// the id is unknown; that is a reported no-op, not an error.
func (d *Document) MoveSection(id string, dir MoveDirection) bool {
	idx := d.sectionIndex(id)
	if idx < 0 {
		return false
	}
	switch dir {
	case MoveUp:
		if idx == 0 {
			return false
		}
		d.Sections[idx-1], d.Sections[idx] = d.Sections[idx], d.Sections[idx-1]
	case MoveDown:
		if idx == len(d.Sections)-1 {
			return false
		}
		d.Sections[idx], d.Sections[idx+1] = d.Sections[idx+1], d.Sections[idx]
	default:
		return false
	}
	return true
}

// Section returns a pointer to the section with the given id, or nil
func (d *Document) Section(id string) *Section {
	if idx := d.sectionIndex(id); idx >= 0 {
		return &d.Sections[idx]
	}
	return nil
}

// RemoveSection deletes the section with the given id, reporting whether
// anything was removed
func (d *Document) RemoveSection(id string) bool {
	idx := d.sectionIndex(id)
	if idx < 0 {
		return false
	}
	d.Sections = append(d.Sections[:idx], d.Sections[idx+1:]...)
	return true
}

func (d *Document) sectionIndex(id string) int {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return i
		}
	}
	return -1
}

// AddItem appends one empty item shaped for the section type and returns
// a pointer to it. Text-shaped sections return nil.
func AddItem(sec *Section) *Item {
	if ShapeOf(sec.Type) != ShapeList {
		return nil
	}
	sec.Items = append(sec.Items, NewItem(sec.Type))
	return &sec.Items[len(sec.Items)-1]
}

// RemoveItem deletes the item with the given id. A list-shaped section is
// never left empty: removing the last item reinserts one empty item of the
// correct shape. Returns whether an item was removed.
func RemoveItem(sec *Section, itemID string) bool {
	for i := range sec.Items {
		if sec.Items[i].ID == itemID {
			sec.Items = append(sec.Items[:i], sec.Items[i+1:]...)
			if len(sec.Items) == 0 {
				sec.Items = DefaultItems(sec.Type)
			}
			return true
		}
	}
	return false
}

// Normalize repairs derived and defaulted state in place: website entries
// with empty URLs are dropped, icon classes are recomputed from the link
// type, the display language falls back to the default, and list-shaped
// sections are guaranteed at least one item.
func (d *Document) Normalize() {
	if strings.TrimSpace(d.PersonalInfo.Language) == "" {
		d.PersonalInfo.Language = DefaultLanguage
	}
	kept := d.PersonalInfo.Websites[:0]
	for _, site := range d.PersonalInfo.Websites {
		if strings.TrimSpace(site.URL) == "" {
			continue
		}
		site.IconClass = WebsiteIconClass(site.Type)
		kept = append(kept, site)
	}
	d.PersonalInfo.Websites = kept
	for i := range d.Sections {
		sec := &d.Sections[i]
		if ShapeOf(sec.Type) == ShapeList && len(sec.Items) == 0 {
			sec.Items = DefaultItems(sec.Type)
		}
	}
}
