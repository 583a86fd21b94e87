// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/screenref/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the resolved catalog to a SQLite snapshot",
	Long: `Export writes entities, derived cross-references, references, citations
and unresolved links to a SQLite database for build-time tooling. The
snapshot is replaced on every run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}

		store, err := snapshot.Open(e.cfg.Snapshot.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		sum, err := store.Write(context.Background(), e.cat, e.index)
		if err != nil {
			return err
		}
		fmt.Printf("entities: %d, links: %d, references: %d, citations: %d, unresolved: %d\n",
			sum.Entities, sum.Links, sum.References, sum.Citations, sum.Unresolved)
		fmt.Println("Exported to", e.cfg.Snapshot.Path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("db", "", "snapshot database path (default from config)")
	cobra.CheckErr(viper.BindPFlag("snapshot.path", exportCmd.Flags().Lookup("db")))

	rootCmd.AddCommand(exportCmd)
}
