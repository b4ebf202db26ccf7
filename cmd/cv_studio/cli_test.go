package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-studio/internal/config"
	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/settings"
	"github.com/jonathan/cv-studio/internal/store"
)

func TestRunInit(t *testing.T) {
	initOut = filepath.Join(t.TempDir(), "cv.json")
	initForce = false

	require.NoError(t, runInit(nil, nil))

	doc, err := store.Load(initOut)
	require.NoError(t, err)
	assert.Len(t, doc.Sections, 4)
	assert.Equal(t, document.SectionSummary, doc.Sections[0].Type)
	assert.Equal(t, document.SectionSkills, doc.Sections[3].Type)
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	initOut = filepath.Join(t.TempDir(), "cv.json")
	initForce = false

	require.NoError(t, runInit(nil, nil))
	err := runInit(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	initForce = true
	assert.NoError(t, runInit(nil, nil))
}

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	initOut = filepath.Join(dir, "cv.json")
	initForce = false
	require.NoError(t, runInit(nil, nil))

	exportDocument = initOut
	exportOut = filepath.Join(dir, "cv.html")
	require.NoError(t, runExport(nil, nil))

	data, err := os.ReadFile(exportOut)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
	assert.Contains(t, string(data), "cv-preview")
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()
	initOut = filepath.Join(dir, "cv.json")
	initForce = false
	require.NoError(t, runInit(nil, nil))

	validateDocument = initOut
	assert.NoError(t, runValidate(nil, nil))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"sections": "nope"}`), 0o644))
	validateDocument = bad
	assert.Error(t, runValidate(nil, nil))
}

func TestFindSection(t *testing.T) {
	doc := document.New()
	exp := document.NewSection(document.SectionExperience)
	doc.Sections = append(doc.Sections, exp)

	assert.Equal(t, exp.ID, findSection(doc, exp.ID).ID, "lookup by id")
	assert.Equal(t, exp.ID, findSection(doc, "experience").ID, "lookup by type name")
	assert.Nil(t, findSection(doc, "nope"))
}

func TestResolveConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, store.Save(document.New(), "cv.json"))
	t.Setenv("CV_DOCUMENT", "")
	t.Setenv("CV_MODEL", "")

	cfg, err := resolveConfig("")
	require.NoError(t, err)
	assert.Equal(t, "cv.json", cfg.Document)
	assert.Equal(t, 8080, cfg.Port)
	assert.NotEmpty(t, cfg.BaseURL)
	assert.NotEmpty(t, cfg.Model)
}

func TestResolveConfig_EnvWinsOverFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, store.Save(document.New(), "cv.json"))
	path := "config.json"
	require.NoError(t, os.WriteFile(path, []byte(`{"model":"from-file","language":"German"}`), 0o644))

	t.Setenv("CV_MODEL", "from-env")
	t.Setenv("CV_LANGUAGE", "")
	t.Setenv("CV_DOCUMENT", "")

	cfg, err := resolveConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Model)
	assert.Equal(t, "German", cfg.Language)
}

func TestResolveLanguage_PersistsPreference(t *testing.T) {
	st, err := settings.Open(t.TempDir())
	require.NoError(t, err)
	defer closeSettings(st)

	// An explicit choice wins and is remembered.
	got := resolveLanguage(config.Config{Language: "Polish"}, st)
	assert.Equal(t, "Polish", got)

	stored, err := st.Get(settings.KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "Polish", stored)

	// Later runs without an explicit choice fall back to the stored one.
	assert.Equal(t, "Polish", resolveLanguage(config.Config{}, st))
}

func TestResolveLanguage_NoStore(t *testing.T) {
	assert.Equal(t, "German", resolveLanguage(config.Config{Language: "German"}, nil))
	assert.Empty(t, resolveLanguage(config.Config{}, nil))
}
