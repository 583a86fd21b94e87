// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/screenref/internal/cite"
	"github.com/pdiddy/screenref/pkg/types"
)

var citeCmd = &cobra.Command{
	Use:   "cite [refId...]",
	Short: "Format citations inline and print the resulting reference list",
	Long: `Cite formats the given reference ids as one inline citation within a
fresh rendering context, then prints the numbered reference list.

With --entity kind/id, the entity's body is printed with its inline markers
rendered, followed by its own citations, one line per citation with its
usage-site detail. Body markers and citations share one numbering.`,
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	styleName, _ := cmd.Flags().GetString("style")
	if styleName == "" {
		styleName = e.cfg.Citation.Style
	}
	style, err := cite.ParseStyle(styleName)
	if err != nil {
		return err
	}

	ctx := cite.NewContext()
	e.log.WithField("context", ctx.ID()).Debug("render context opened")

	entityRef, _ := cmd.Flags().GetString("entity")
	if entityRef != "" {
		entity, err := findEntity(e, entityRef)
		if err != nil {
			return err
		}
		if entity.Body != "" {
			fmt.Println(cite.RenderInline(ctx, e.cat, entity.Body, style))
			fmt.Println()
		}
		for _, c := range entity.Citations {
			inline := cite.Format(ctx, e.cat, []types.Citation{c}, style)
			if inline == "" {
				inline = "(unresolved " + c.RefID + ")"
			}
			if d := cite.Detail(c); d != "" {
				inline += "  " + d
			}
			fmt.Println(inline)
		}
	} else {
		if len(args) == 0 {
			return fmt.Errorf("reference ids or --entity required")
		}
		citations := make([]types.Citation, len(args))
		for i, id := range args {
			citations[i] = types.Citation{RefID: id}
		}
		fmt.Println(cite.Format(ctx, e.cat, citations, style))
	}

	if style == cite.StyleNumeric {
		fmt.Println()
		for _, nr := range ctx.Bibliography(e.cat) {
			fmt.Printf("%d. %s\n", nr.Number, cite.FormatReference(nr.Reference))
		}
	}
	return nil
}

func findEntity(e *env, s string) (types.Entity, error) {
	kind, id, ok := strings.Cut(s, "/")
	if !ok || !types.EntityKind(kind).IsValid() {
		return types.Entity{}, fmt.Errorf("entity %q: want kind/id", s)
	}
	entity, ok := e.cat.Entity(types.EntityKind(kind), id)
	if !ok {
		return types.Entity{}, fmt.Errorf("%s not found", s)
	}
	return entity, nil
}

func init() {
	citeCmd.Flags().String("style", "", "citation style: numeric or author-year (default from config)")
	citeCmd.Flags().String("entity", "", "format the citations of an entity (kind/id)")

	rootCmd.AddCommand(citeCmd)
}
