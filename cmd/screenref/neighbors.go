// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/screenref/internal/xref"
	"github.com/pdiddy/screenref/pkg/types"
)

var neighborsCmd = &cobra.Command{
	Use:   "neighbors <kind> <id>",
	Short: "List the cross-referenced entities of one entity",
	Long: `Neighbors prints every entity linked to the given one, per relation,
whichever side of the relation was authored. Use --relation to restrict
output to a single relation.`,
	Args: cobra.ExactArgs(2),
	RunE: runNeighbors,
}

func runNeighbors(cmd *cobra.Command, args []string) error {
	kind := types.EntityKind(args[0])
	if !kind.IsValid() {
		return fmt.Errorf("unknown kind %q: use one of %v", args[0], types.AllKinds)
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	entity, ok := e.cat.Entity(kind, args[1])
	if !ok {
		return fmt.Errorf("%s %q not found", kind, args[1])
	}

	relations := types.AllRelations
	if r, _ := cmd.Flags().GetString("relation"); r != "" {
		rel := types.RelationKind(r)
		if _, ok := xref.Inverse(rel); !ok {
			return fmt.Errorf("unknown relation %q", r)
		}
		relations = []types.RelationKind{rel}
	}

	fmt.Printf("%s  %s\n", entity.Ref(), entity.Title)
	for _, rel := range relations {
		for _, n := range e.index.Neighbors(entity.Ref(), rel) {
			fmt.Printf("  %-14s %-30s %s\n", rel, n.Ref(), n.Title)
		}
	}
	return nil
}

func init() {
	neighborsCmd.Flags().String("relation", "", "restrict output to one relation (e.g. treatedBy)")

	rootCmd.AddCommand(neighborsCmd)
}
