// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/screenref/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report dangling links, unknown references and keys, and unmapped evidence codes",
	Long: `Validate loads the content directory and reports every recoverable
content defect: declared links whose target does not exist, citations of
references missing from references.yaml, inline [key] markers in entity
bodies that name no reference, and evidence codes no grading
vocabulary recognizes. Exits non-zero when any defect is found.

Duplicate ids are load errors and stop validation immediately.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	report := validate.Check(e.cat, e.index)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printReport(report)
	}

	if report.Failed() {
		return fmt.Errorf("content has %d unresolved link(s), %d missing reference(s), %d unknown inline key(s), %d unclassified evidence code(s)",
			len(report.Unresolved), len(report.MissingReferences), len(report.UnknownKeys), len(report.UnclassifiedEvidence))
	}
	return nil
}

func printReport(r validate.Report) {
	for _, u := range r.Unresolved {
		fmt.Printf("link      %-30s %-14s %-20s (%s)\n", u.Source, u.Relation, u.MissingTargetID, u.Reason)
	}
	for _, m := range r.MissingReferences {
		fmt.Printf("reference %-30s %s\n", m.Entity, m.RefID)
	}
	for _, m := range r.UnknownKeys {
		fmt.Printf("key       %-30s %s\n", m.Entity, m.RefID)
	}
	for _, m := range r.UnclassifiedEvidence {
		fmt.Printf("evidence  %-30s %-20s %q\n", m.Entity, m.RefID, m.Code)
	}
	for _, id := range r.UnusedReferences {
		fmt.Printf("unused    %s\n", id)
	}
	if !r.Failed() {
		fmt.Println("Content OK.")
	}
}

func init() {
	validateCmd.Flags().Bool("json", false, "output the report as JSON")

	rootCmd.AddCommand(validateCmd)
}
