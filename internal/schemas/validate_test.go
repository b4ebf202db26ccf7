package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_Valid(t *testing.T) {
	doc := []byte(`{
		"personalInfo": {"fullName": "Jane", "websites": [{"url": "jane.dev", "type": "personal"}]},
		"sections": [
			{"id": "a", "type": "summary", "title": "Summary", "visible": true, "content": "hi"},
			{"id": "b", "type": "skills", "visible": true, "items": [{"id": "c", "category": "Backend", "items": ["Go"]}]}
		]
	}`)

	assert.NoError(t, ValidateDocument(doc))
}

func TestValidateDocument_MissingSectionID(t *testing.T) {
	doc := []byte(`{"personalInfo": {}, "sections": [{"type": "summary"}]}`)

	err := ValidateDocument(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "id")
}

func TestValidateShape(t *testing.T) {
	assert.NoError(t, ValidateShape([]byte(`{}`)))
	assert.NoError(t, ValidateShape([]byte(`{"personalInfo": {}, "sections": [{"type": "x"}]}`)))

	assert.Error(t, ValidateShape([]byte(`[]`)), "top-level array rejected")
	assert.Error(t, ValidateShape([]byte(`"text"`)), "top-level string rejected")
	assert.Error(t, ValidateShape([]byte(`{"sections": {}}`)), "sections must be an array")
}
