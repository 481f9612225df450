package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-screengen/pkg/sanitize"
)

type sanitizeOptions struct {
	assignIDs bool
	project   string
	screen    string
	output    string
}

func newSanitizeCmd(state *app) *cobra.Command {
	opts := &sanitizeOptions{}

	cmd := &cobra.Command{
		Use:   "sanitize <batch-file|->",
		Short: "Coerce a generated element batch into canonical elements",
		Long: "Reads a JSON or YAML element array, optionally wrapped in a markdown fence,\n" +
			"and prints the sanitized elements. With --project and --screen the batch is\n" +
			"appended to that screen and the updated project is printed instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			if opts.project != "" {
				if opts.screen == "" {
					return fmt.Errorf("--screen is required with --project")
				}
				project, err := state.loadProject(cmd, opts.project)
				if err != nil {
					return err
				}
				orch, err := state.orchestrator()
				if err != nil {
					return err
				}
				updated, err := orch.Import(cmd.Context(), project, opts.screen, batch)
				if err != nil {
					return err
				}
				return writeJSON(cmd, opts.output, updated)
			}

			raw, err := sanitize.DecodeBatch(batch)
			if err != nil {
				return err
			}
			s := state.sanitizer()
			elements := s.Sanitize(raw)
			if opts.assignIDs {
				elements = s.Import(raw)
			}
			return writeJSON(cmd, opts.output, elements)
		},
	}

	cmd.Flags().BoolVar(&opts.assignIDs, "ids", false, "Assign fresh element ids")
	cmd.Flags().StringVar(&opts.project, "project", "", "Project document to append the batch to")
	cmd.Flags().StringVar(&opts.screen, "screen", "", "Screen id receiving the batch")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (stdout if empty)")
	return cmd
}

func writeJSON(cmd *cobra.Command, path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return writeOutput(cmd, path, append(data, '\n'))
}
