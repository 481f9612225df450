package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-screengen/pkg/preview"
	"github.com/goliatone/go-screengen/pkg/prompt"
)

func newPreviewCmd(state *app, root *rootFlags) *cobra.Command {
	flags := &renderFlags{}
	var tree bool

	cmd := &cobra.Command{
		Use:   "preview <project-file|->",
		Short: "Describe how each screen renders inside a device frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := state.loadProject(cmd, args[0])
			if err != nil {
				return err
			}
			req, err := state.renderRequest(cmd.Context(), cmd, project, flags, root.interactive)
			if err != nil {
				return err
			}
			if root.interactive && flags.device == "" {
				device, err := prompt.NewSession(state.driver).ChooseDevice(cmd.Context(), req.RenderOptions.Device)
				if err != nil {
					return err
				}
				req.RenderOptions.Device = device
			}
			req.Renderer = "preview"

			orch, err := state.orchestrator()
			if err != nil {
				return err
			}
			req.Theme = state.cfg.Theme
			out, err := orch.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if !tree {
				return writeOutput(cmd, outputPath(flags.output, state.cfg.Output), out)
			}

			var frames []preview.Frame
			if err := json.Unmarshal(out, &frames); err != nil {
				return fmt.Errorf("decode preview frames: %w", err)
			}
			return writeOutput(cmd, flags.output, []byte(renderTree(frames)))
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "Print a styled node tree instead of JSON")
	bindRenderFlags(cmd, flags)
	return cmd
}

var (
	screenStyle = lipgloss.NewStyle().Bold(true)
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	textStyle   = lipgloss.NewStyle().Italic(true)
)

// renderTree prints one block per frame with its positioned nodes.
func renderTree(frames []preview.Frame) string {
	var b strings.Builder
	for i, frame := range frames {
		if i > 0 {
			b.WriteString("\n")
		}
		mode := "light"
		if frame.Dark {
			mode = "dark"
		}
		fmt.Fprintf(&b, "%s %s\n",
			screenStyle.Render(fmt.Sprintf("%s (%s)", frame.Name, frame.Screen)),
			metaStyle.Render(fmt.Sprintf("%s %dx%d %s %s", frame.Device.Label, frame.Device.Width, frame.Device.Height, mode, frame.Background)),
		)
		if len(frame.Elements) == 0 {
			b.WriteString("  " + metaStyle.Render("(empty)") + "\n")
		}
		for j, el := range frame.Elements {
			last := j == len(frame.Elements)-1
			fmt.Fprintf(&b, "%s%s %s %s\n", branch(last), kindStyle.Render(el.Type), el.ID,
				metaStyle.Render(fmt.Sprintf("@%g,%g %gx%g", el.Left, el.Top, el.Width, el.Height)))
			writeNode(&b, el.Node, indent(last))
		}
	}
	return b.String()
}

func writeNode(b *strings.Builder, n preview.Node, prefix string) {
	line := prefix + kindStyle.Render(string(n.Kind))
	if n.Text != "" {
		line += " " + textStyle.Render(fmt.Sprintf("%q", n.Text))
	}
	if meta := nodeMeta(n); meta != "" {
		line += " " + metaStyle.Render(meta)
	}
	b.WriteString(line + "\n")
	for _, child := range n.Children {
		writeNode(b, child, prefix+"  ")
	}
}

func nodeMeta(n preview.Node) string {
	if len(n.Attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + n.Attrs[k]
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func branch(last bool) string {
	if last {
		return "└─ "
	}
	return "├─ "
}

func indent(last bool) string {
	if last {
		return "     "
	}
	return "│    "
}
