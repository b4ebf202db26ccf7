// Package document provides the canonical in-memory CV model and the
// section registry that supplies per-type defaults and display metadata.
package document

// WebsiteType classifies a personal website link
type WebsiteType string

// Known website types map to display icons; anything else is treated as custom
const (
	WebsitePortfolio WebsiteType = "portfolio"
	WebsiteLinkedIn  WebsiteType = "linkedin"
	WebsiteGitHub    WebsiteType = "github"
	WebsiteInstagram WebsiteType = "instagram"
	WebsiteTwitter   WebsiteType = "twitter"
	WebsitePersonal  WebsiteType = "personal"
	WebsiteCustom    WebsiteType = "custom"
)

// Website is a single personal link. IconClass is derived from Type and is
// recomputed on normalization, never set independently.
type Website struct {
	URL       string      `json:"url"`
	Type      WebsiteType `json:"type"`
	IconClass string      `json:"iconClass,omitempty"`
}

// PersonalInfo holds the header fields of the CV
type PersonalInfo struct {
	FullName string    `json:"fullName"`
	JobTitle string    `json:"jobTitle"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Location string    `json:"location"`
	Language string    `json:"language"`
	Websites []Website `json:"websites,omitempty"`
}

// SectionType identifies the shape and default behavior of a section
type SectionType string

// Core section types; unregistered types fall back to text shape
const (
	SectionSummary    SectionType = "summary"
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionSkills     SectionType = "skills"
	SectionCustom     SectionType = "custom"
)

// Section is a titled, reorderable, independently visible block of the CV.
// Exactly one of Content (text shape) or Items (list shape) is populated;
// which one is determined by Type.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Visible bool        `json:"visible"`
	Content string      `json:"content,omitempty"`
	Items   []Item      `json:"items,omitempty"`
}

// Item is one structured entry within a list-shaped section. The populated
// fields depend on the parent section type: experience entries use
// Company/Position/Duration/Location/Description, education entries use
// Institution/Degree/Year/Location/Details, and skill groups use
// Category/Skills.
type Item struct {
	ID string `json:"id"`

	// Experience
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`

	// Education
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
	Details     string `json:"details,omitempty"`

	// Skills
	Category string   `json:"category,omitempty"`
	Skills   []string `json:"items,omitempty"`
}

// Document is the single mutable source of truth for one editing session.
// Sections render and serialize in slice order.
type Document struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Sections     []Section    `json:"sections"`
}

// DefaultLanguage is used when PersonalInfo.Language is unset
const DefaultLanguage = "English"

// New returns an empty document with a default summary section
func New() *Document {
	return &Document{
		PersonalInfo: PersonalInfo{Language: DefaultLanguage},
		Sections:     []Section{NewSection(SectionSummary)},
	}
}
