package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/schemas"
)

var validateDocument string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CV document file against the schema",
	Long:  "Runs strict JSON Schema validation and lists every violation. Exits non-zero when the document is invalid.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateDocument, "document", "d", "cv.json", "Path to the CV document JSON file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateDocument)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	if err := schemas.ValidateDocument(data); err != nil {
		var vErr *schemas.ValidationError
		if errors.As(err, &vErr) {
			fmt.Printf("%s is invalid:\n", validateDocument)
			for _, fieldErr := range vErr.Errors {
				fmt.Printf("  - %s: %s\n", fieldErr.Field, fieldErr.Message)
			}
			return fmt.Errorf("%d validation error(s)", len(vErr.Errors))
		}
		return err
	}

	fmt.Printf("%s is valid\n", validateDocument)
	return nil
}
