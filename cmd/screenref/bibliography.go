// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/screenref/internal/cite"
)

var bibliographyCmd = &cobra.Command{
	Use:   "bibliography",
	Short: "Print every registered reference",
	Long: `Bibliography prints the reference registry in source order, either as
Vancouver-style text entries or as BibTeX.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "text", "":
			for _, r := range e.cat.References() {
				fmt.Printf("[%s] %s\n", r.RefID, cite.FormatReference(r))
			}
		case "bibtex":
			fmt.Print(cite.GenerateBibTeX(e.cat.References()))
		default:
			return fmt.Errorf("unsupported format %q: use text or bibtex", format)
		}
		return nil
	},
}

func init() {
	bibliographyCmd.Flags().String("format", "text", "output format: text or bibtex")

	rootCmd.AddCommand(bibliographyCmd)
}
