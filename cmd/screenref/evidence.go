// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/screenref/internal/evidence"
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence [code...]",
	Short: "Show the badge for evidence-grading codes",
	Long: `Evidence classifies each code (numeral levels such as Ib or IIa, or letter
grades such as A or GPP) and prints its badge text, label and color class.
Without arguments it lists every code of both vocabularies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		codes := args
		if len(codes) == 0 {
			for _, scheme := range evidence.Schemes() {
				codes = append(codes, evidence.Codes(scheme)...)
			}
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			out := make(map[string]evidence.Badge, len(codes))
			for _, c := range codes {
				out[c] = evidence.ClassifyString(c)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		for _, c := range codes {
			b := evidence.ClassifyString(c)
			fmt.Printf("%-6s %-10s %-24s %s\n", c, b.Text, b.ColorClass, b.Label)
		}
		return nil
	},
}

func init() {
	evidenceCmd.Flags().Bool("json", false, "output badges as JSON")

	rootCmd.AddCommand(evidenceCmd)
}
