package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSection_TextShape(t *testing.T) {
	sec := NewSection(SectionSummary)

	assert.NotEmpty(t, sec.ID)
	assert.Equal(t, SectionSummary, sec.Type)
	assert.Equal(t, "Professional Summary", sec.Title)
	assert.True(t, sec.Visible)
	assert.NotEmpty(t, sec.Content)
	assert.Nil(t, sec.Items)
}

func TestNewSection_ListShape(t *testing.T) {
	for _, typ := range []SectionType{SectionExperience, SectionEducation, SectionSkills} {
		sec := NewSection(typ)

		assert.Empty(t, sec.Content, "type %s", typ)
		require.Len(t, sec.Items, 1, "type %s", typ)
		assert.NotEmpty(t, sec.Items[0].ID, "type %s", typ)
		assert.False(t, ItemHasContent(sec.Items[0]), "type %s", typ)
	}
}

func TestNewSection_UnknownTypeIsEmptyText(t *testing.T) {
	sec := NewSection(SectionType("references"))

	assert.Equal(t, "references", sec.Title)
	assert.Empty(t, sec.Content)
	assert.Nil(t, sec.Items)
}

func TestChangeSectionType_FieldExclusivity(t *testing.T) {
	tests := []struct {
		name string
		from SectionType
		to   SectionType
	}{
		{"text to list", SectionSummary, SectionExperience},
		{"list to text", SectionSkills, SectionCustom},
		{"list to list", SectionExperience, SectionEducation},
		{"text to text", SectionSummary, SectionCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec := NewSection(tt.from)
			originalID := sec.ID

			ChangeSectionType(&sec, tt.to)

			assert.Equal(t, originalID, sec.ID, "id must survive type change")
			assert.Equal(t, tt.to, sec.Type)
			assert.Equal(t, DefaultTitle(tt.to), sec.Title)

			if ShapeOf(tt.to) == ShapeList {
				assert.Empty(t, sec.Content)
				require.Len(t, sec.Items, 1)
			} else {
				assert.Nil(t, sec.Items)
				assert.Equal(t, DefaultContent(tt.to), sec.Content)
			}
		})
	}
}

func TestChangeSectionType_DiscardsOldContent(t *testing.T) {
	sec := NewSection(SectionExperience)
	sec.Items[0].Company = "Acme"

	ChangeSectionType(&sec, SectionSummary)

	require.Nil(t, sec.Items)
	ChangeSectionType(&sec, SectionExperience)
	require.Len(t, sec.Items, 1)
	assert.Empty(t, sec.Items[0].Company)
}

func TestDuplicateSection_NeverReusesIDs(t *testing.T) {
	sec := NewSection(SectionExperience)
	AddItem(&sec)
	sec.Items[0].Company = "Acme"
	sec.Items[1].Company = "Globex"

	dup := DuplicateSection(sec)

	assert.NotEqual(t, sec.ID, dup.ID)
	require.Len(t, dup.Items, 2)

	seen := map[string]bool{sec.ID: true}
	for _, item := range sec.Items {
		seen[item.ID] = true
	}
	for _, item := range dup.Items {
		assert.False(t, seen[item.ID], "duplicated item id %s collides", item.ID)
		seen[item.ID] = true
	}

	// Content is carried over
	assert.Equal(t, "Acme", dup.Items[0].Company)
	assert.Equal(t, "Globex", dup.Items[1].Company)
}

func TestDuplicateSection_DeepCopiesSkills(t *testing.T) {
	sec := NewSection(SectionSkills)
	sec.Items[0].Category = "Languages"
	sec.Items[0].Skills = []string{"Go", "Python"}

	dup := DuplicateSection(sec)
	dup.Items[0].Skills[0] = "Rust"

	assert.Equal(t, "Go", sec.Items[0].Skills[0], "skills slice must not be shared")
}

func TestSectionHasContent(t *testing.T) {
	summary := NewSection(SectionSummary)
	assert.False(t, SectionHasContent(summary), "default placeholder is not content")

	summary.Content = "Seasoned backend engineer."
	assert.True(t, SectionHasContent(summary))

	summary.Content = "   "
	assert.False(t, SectionHasContent(summary))

	exp := NewSection(SectionExperience)
	assert.False(t, SectionHasContent(exp))

	exp.Items[0].Position = "Engineer"
	assert.True(t, SectionHasContent(exp))

	skills := NewSection(SectionSkills)
	assert.False(t, SectionHasContent(skills))
	skills.Items[0].Skills = []string{"Go"}
	assert.True(t, SectionHasContent(skills))
}

func TestMoveSection(t *testing.T) {
	doc := &Document{Sections: []Section{
		NewSection(SectionSummary),
		NewSection(SectionExperience),
		NewSection(SectionEducation),
	}}
	first, second, third := doc.Sections[0].ID, doc.Sections[1].ID, doc.Sections[2].ID

	assert.True(t, doc.MoveSection(second, MoveUp))
	assert.Equal(t, second, doc.Sections[0].ID)
	assert.Equal(t, first, doc.Sections[1].ID)

	// Edge moves are reported no-ops
	assert.False(t, doc.MoveSection(second, MoveUp))
	assert.False(t, doc.MoveSection(third, MoveDown))
	assert.Equal(t, second, doc.Sections[0].ID)

	// Unknown id and unknown direction
	assert.False(t, doc.MoveSection("missing", MoveDown))
	assert.False(t, doc.MoveSection(first, MoveDirection("sideways")))
}

func TestRemoveSection(t *testing.T) {
	doc := &Document{Sections: []Section{NewSection(SectionSummary), NewSection(SectionSkills)}}
	id := doc.Sections[0].ID

	assert.True(t, doc.RemoveSection(id))
	assert.Len(t, doc.Sections, 1)
	assert.False(t, doc.RemoveSection(id))
}

func TestRemoveItem_ListNeverEmpty(t *testing.T) {
	sec := NewSection(SectionEducation)
	sec.Items[0].Institution = "MIT"
	onlyID := sec.Items[0].ID

	assert.True(t, RemoveItem(&sec, onlyID))
	require.Len(t, sec.Items, 1, "removing the last item reinserts an empty one")
	assert.NotEqual(t, onlyID, sec.Items[0].ID)
	assert.False(t, ItemHasContent(sec.Items[0]))
}

func TestAddRemoveItem_InvariantHoldsAcrossSequences(t *testing.T) {
	sec := NewSection(SectionExperience)

	for i := 0; i < 4; i++ {
		AddItem(&sec)
		require.GreaterOrEqual(t, len(sec.Items), 1)
	}
	assert.Len(t, sec.Items, 5)

	for len(sec.Items) > 0 {
		removed := RemoveItem(&sec, sec.Items[0].ID)
		require.True(t, removed)
		require.GreaterOrEqual(t, len(sec.Items), 1, "list-shaped sections never empty")
		if len(sec.Items) == 1 && !ItemHasContent(sec.Items[0]) {
			break
		}
	}
}

func TestAddItem_TextSectionIsNoOp(t *testing.T) {
	sec := NewSection(SectionSummary)
	assert.Nil(t, AddItem(&sec))
	assert.Nil(t, sec.Items)
}

func TestNormalize(t *testing.T) {
	doc := &Document{
		PersonalInfo: PersonalInfo{
			Websites: []Website{
				{URL: "github.com/jane", Type: WebsiteGitHub},
				{URL: "   ", Type: WebsitePortfolio},
				{URL: "https://jane.dev", Type: WebsitePersonal, IconClass: "stale"},
			},
		},
		Sections: []Section{{ID: "s1", Type: SectionExperience, Visible: true}},
	}

	doc.Normalize()

	assert.Equal(t, DefaultLanguage, doc.PersonalInfo.Language)
	require.Len(t, doc.PersonalInfo.Websites, 2, "empty urls are dropped")
	assert.Equal(t, "icon-github", doc.PersonalInfo.Websites[0].IconClass)
	assert.Equal(t, "icon-user", doc.PersonalInfo.Websites[1].IconClass, "icon class is derived, not kept")
	require.Len(t, doc.Sections[0].Items, 1, "list sections are refilled")
}

func TestClone_IsIndependent(t *testing.T) {
	doc := New()
	exp := NewSection(SectionExperience)
	exp.Items[0].Company = "Acme"
	skills := NewSection(SectionSkills)
	skills.Items[0].Skills = []string{"Go"}
	doc.Sections = append(doc.Sections, exp, skills)
	doc.PersonalInfo.Websites = []Website{{URL: "github.com/jane", Type: WebsiteGitHub}}

	clone := doc.Clone()

	assert.Equal(t, doc, clone)
	assert.Equal(t, exp.ID, clone.Sections[1].ID, "clone keeps ids")

	clone.Sections[1].Items[0].Company = "Globex"
	clone.Sections[2].Items[0].Skills[0] = "Rust"
	clone.PersonalInfo.Websites[0].URL = "changed"

	assert.Equal(t, "Acme", doc.Sections[1].Items[0].Company)
	assert.Equal(t, "Go", doc.Sections[2].Items[0].Skills[0])
	assert.Equal(t, "github.com/jane", doc.PersonalInfo.Websites[0].URL)
}
