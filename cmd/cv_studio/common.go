package main

import (
	"errors"
	"log"

	"github.com/jonathan/cv-studio/internal/ai"
	"github.com/jonathan/cv-studio/internal/config"
	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/settings"
)

// resolveConfig layers configuration: environment variables win over the
// config file, the config file wins over built-in defaults.
func resolveConfig(configPath string) (config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Document: "cv.json",
		BaseURL:  ai.DefaultBaseURL,
		Model:    ai.DefaultModel,
		Port:     8080,
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// resolveAIConfig builds the completion client configuration. A key given
// via flag/env/config is remembered in the settings store for later runs;
// otherwise the stored key is used.
func resolveAIConfig(cfg config.Config, st *settings.Store) ai.ClientConfig {
	key := cfg.APIKey
	if st != nil {
		if key != "" {
			if err := st.Set(settings.KeyAPIKey, key); err != nil {
				log.Printf("[settings] failed to store API key: %v", err)
			}
		} else {
			stored, err := st.Get(settings.KeyAPIKey)
			if err != nil {
				log.Printf("[settings] failed to read stored API key: %v", err)
			}
			key = stored
		}
	}

	return ai.ClientConfig{
		APIKey:      key,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
}

// resolveLanguage picks the response language. An explicit flag/env/config
// choice wins and is remembered as the display-language preference for
// later runs; otherwise the stored preference applies.
func resolveLanguage(cfg config.Config, st *settings.Store) string {
	if cfg.Language != "" {
		if st != nil {
			if err := st.Set(settings.KeyLanguage, cfg.Language); err != nil {
				log.Printf("[settings] failed to store language preference: %v", err)
			}
		}
		return cfg.Language
	}
	if st != nil {
		if stored, err := st.Get(settings.KeyLanguage); err == nil && stored != "" {
			return stored
		}
	}
	return ""
}

// clearKeyOnAuthFailure drops the stored API key after the completion
// service rejected it, so the next run asks for a fresh one.
func clearKeyOnAuthFailure(err error, st *settings.Store) {
	var authErr *ai.AuthError
	if !errors.As(err, &authErr) || st == nil {
		return
	}
	if delErr := st.Delete(settings.KeyAPIKey); delErr != nil {
		log.Printf("[settings] failed to clear stored API key: %v", delErr)
	} else {
		log.Printf("[settings] cleared stored API key after authentication failure")
	}
}

// findSection resolves a section reference that may be an id or a type
// name. Type lookup returns the first section of that type.
func findSection(doc *document.Document, ref string) *document.Section {
	if sec := doc.Section(ref); sec != nil {
		return sec
	}
	for i := range doc.Sections {
		if string(doc.Sections[i].Type) == ref {
			return &doc.Sections[i]
		}
	}
	return nil
}

// openSettings opens the settings store; a failure is logged, not fatal,
// because everything except key persistence works without it.
func openSettings(dataDir string) *settings.Store {
	st, err := settings.Open(dataDir)
	if err != nil {
		log.Printf("[settings] store unavailable: %v", err)
		return nil
	}
	return st
}

func closeSettings(st *settings.Store) {
	if st == nil {
		return
	}
	if err := st.Close(); err != nil {
		log.Printf("[settings] close failed: %v", err)
	}
}
