package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(state *app, root *rootFlags) *cobra.Command {
	flags := &renderFlags{}
	var (
		rendererName string
		list         bool
	)

	cmd := &cobra.Command{
		Use:   "generate <project-file|->",
		Short: "Generate a Flutter app from a project document",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				orch, err := state.orchestrator()
				if err != nil {
					return err
				}
				for _, info := range orch.RendererInfo() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", info.Name, info.ContentType)
				}
				return nil
			}

			project, err := state.loadProject(cmd, args[0])
			if err != nil {
				return err
			}
			req, err := state.renderRequest(cmd.Context(), cmd, project, flags, root.interactive)
			if err != nil {
				return err
			}
			req.Renderer = state.cfg.Renderer
			if rendererName != "" {
				req.Renderer = rendererName
			}

			orch, err := state.orchestrator()
			if err != nil {
				return err
			}
			req.Theme = state.cfg.Theme
			out, err := orch.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeOutput(cmd, outputPath(flags.output, state.cfg.Output), out)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List available renderers and exit")
	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "", "Renderer to use (flutter, preview)")
	bindRenderFlags(cmd, flags)
	return cmd
}
