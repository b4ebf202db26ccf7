package document

import "github.com/google/uuid"

// Shape distinguishes free-text sections from item-list sections
type Shape int

// Section shapes
const (
	ShapeText Shape = iota
	ShapeList
)

// typeInfo is the registry entry for one section type
type typeInfo struct {
	title     string
	icon      string
	shape     Shape
	placehold string
}

// registry maps section types to their default title, icon class, shape,
// and placeholder content. Types not present here behave as text sections
// with an empty default.
var registry = map[SectionType]typeInfo{
	SectionSummary: {
		title:     "Professional Summary",
		icon:      "icon-summary",
		shape:     ShapeText,
		placehold: "Write a brief summary of your professional background and key strengths.",
	},
	SectionExperience: {
		title: "Work Experience",
		icon:  "icon-experience",
		shape: ShapeList,
	},
	SectionEducation: {
		title: "Education",
		icon:  "icon-education",
		shape: ShapeList,
	},
	SectionSkills: {
		title: "Skills",
		icon:  "icon-skills",
		shape: ShapeList,
	},
	SectionCustom: {
		title:     "Custom Section",
		icon:      "icon-custom",
		shape:     ShapeText,
		placehold: "Add your content here.",
	},
}

// websiteIcons maps website types to display icon classes
var websiteIcons = map[WebsiteType]string{
	WebsitePortfolio: "icon-globe",
	WebsiteLinkedIn:  "icon-linkedin",
	WebsiteGitHub:    "icon-github",
	WebsiteInstagram: "icon-instagram",
	WebsiteTwitter:   "icon-twitter",
	WebsitePersonal:  "icon-user",
	WebsiteCustom:    "icon-link",
}

// DefaultTitle returns the registry title for a type, or the type string
// itself for unregistered types
func DefaultTitle(t SectionType) string {
	if info, ok := registry[t]; ok {
		return info.title
	}
	return string(t)
}

// IconClass returns the display icon class for a section type
func IconClass(t SectionType) string {
	if info, ok := registry[t]; ok {
		return info.icon
	}
	return "icon-custom"
}

// WebsiteIconClass returns the display icon class for a website type
func WebsiteIconClass(t WebsiteType) string {
	if icon, ok := websiteIcons[t]; ok {
		return icon
	}
	return websiteIcons[WebsiteCustom]
}

// ShapeOf returns the shape of a section type. Unknown types are text.
func ShapeOf(t SectionType) Shape {
	if info, ok := registry[t]; ok {
		return info.shape
	}
	return ShapeText
}

// DefaultContent returns the placeholder text for a text-shaped type.
// List-shaped and unknown types return an empty string.
func DefaultContent(t SectionType) string {
	if info, ok := registry[t]; ok {
		return info.placehold
	}
	return ""
}

// NewItem allocates one empty item shaped for the given section type
func NewItem(t SectionType) Item {
	item := Item{ID: uuid.NewString()}
	if t == SectionSkills {
		item.Skills = []string{}
	}
	return item
}

// DefaultItems returns the initial item list for a list-shaped type:
// exactly one empty item
func DefaultItems(t SectionType) []Item {
	return []Item{NewItem(t)}
}
