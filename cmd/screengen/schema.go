package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/schema"
)

// componentSummary is the per-type view printed by `schema <type>`.
type componentSummary struct {
	Type        ir.ComponentType    `json:"type"`
	Width       int                 `json:"width"`
	Height      int                 `json:"height"`
	MinWidth    int                 `json:"minWidth"`
	MinHeight   int                 `json:"minHeight"`
	Defaults    ir.Properties       `json:"defaults"`
	Descriptors []schema.Descriptor `json:"descriptors"`
}

func newSchemaCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema [component-type]",
		Short: "Print the component registry as OpenAPI, or one type's editor schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := schema.Default()
			if len(args) == 0 {
				return writeJSON(cmd, output, registry.OpenAPI())
			}

			t := ir.ComponentType(args[0])
			entry, ok := registry.Lookup(t)
			if !ok {
				return fmt.Errorf("unknown component type %q", args[0])
			}
			return writeJSON(cmd, output, componentSummary{
				Type:        entry.Type,
				Width:       entry.Width,
				Height:      entry.Height,
				MinWidth:    entry.MinSize.Width,
				MinHeight:   entry.MinSize.Height,
				Defaults:    entry.DefaultProperties(),
				Descriptors: registry.Descriptors(t),
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")
	return cmd
}
