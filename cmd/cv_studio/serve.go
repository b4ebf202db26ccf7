package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/config"
	"github.com/jonathan/cv-studio/internal/server"
)

var (
	servePort     int
	serveDocument string
	serveConfig   string
	serveDataDir  string
	serveAPIKey   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local editor server",
	Long:  `Start an HTTP server that exposes the CV editor API: document and section editing, live preview over SSE, AI suggestions and export.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveDocument, "document", "d", "", "Path to the CV document JSON file")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "Settings database directory")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Completion service API key (remembered for later runs)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfig)
	if err != nil {
		return err
	}
	cfg = flagOverrides(cfg)

	st := openSettings(cfg.DataDir)
	defer closeSettings(st)

	srv, err := server.New(server.Config{
		Port:     cfg.Port,
		Document: cfg.Document,
		AI:       resolveAIConfig(cfg, st),
		Settings: st,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// flagOverrides applies serve flags on top of the resolved config.
func flagOverrides(cfg config.Config) config.Config {
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDocument != "" {
		cfg.Document = serveDocument
	}
	if serveDataDir != "" {
		cfg.DataDir = serveDataDir
	}
	if serveAPIKey != "" {
		cfg.APIKey = serveAPIKey
	}
	return cfg
}
