package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/prompt"
)

func newEditCmd(state *app) *cobra.Command {
	var (
		screenID  string
		elementID string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "edit <project-file>",
		Short: "Edit one element's properties through prompts",
		Long: "Walks the editor schema of the element's component type, asking for each\n" +
			"property, then prints the updated project. Use -o to write it back.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := state.loadProject(cmd, args[0])
			if err != nil {
				return err
			}
			si, ei, err := locateElement(project, screenID, elementID)
			if err != nil {
				return err
			}

			session := prompt.NewSession(state.driver)
			edited, err := session.EditElement(cmd.Context(), project, project.Screens[si].Elements[ei])
			if err != nil {
				return err
			}
			project.Screens[si].Elements[ei] = edited
			state.log.Debug().
				Str("screen", screenID).
				Str("element", elementID).
				Str("type", string(edited.Type)).
				Msg("element edited")
			return writeJSON(cmd, output, project)
		},
	}

	cmd.Flags().StringVar(&screenID, "screen", "", "Screen id holding the element")
	cmd.Flags().StringVar(&elementID, "element", "", "Element id to edit")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")
	_ = cmd.MarkFlagRequired("screen")
	_ = cmd.MarkFlagRequired("element")
	return cmd
}

func locateElement(project ir.Project, screenID, elementID string) (int, int, error) {
	for si, screen := range project.Screens {
		if screen.ID != screenID {
			continue
		}
		for ei, el := range screen.Elements {
			if el.ID == elementID {
				return si, ei, nil
			}
		}
		return 0, 0, fmt.Errorf("element %q not found in screen %q", elementID, screenID)
	}
	return 0, 0, fmt.Errorf("screen %q not found", screenID)
}
