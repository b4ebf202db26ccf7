package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/store"
)

var (
	initOut   string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter CV document",
	Long:  "Creates a new CV JSON file with a summary, an experience, an education and a skills section ready to fill in.",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initOut, "out", "o", "cv.json", "Output file path")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	if !initForce {
		if _, err := os.Stat(initOut); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", initOut)
		}
	}

	doc := document.New()
	doc.Sections = append(doc.Sections,
		document.NewSection(document.SectionExperience),
		document.NewSection(document.SectionEducation),
		document.NewSection(document.SectionSkills),
	)

	if err := store.Save(doc, initOut); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	fmt.Printf("Created %s\n", initOut)
	return nil
}
