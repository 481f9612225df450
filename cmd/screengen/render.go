package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/orchestrator"
	"github.com/goliatone/go-screengen/pkg/prompt"
	"github.com/goliatone/go-screengen/pkg/render"
)

// renderFlags are shared by generate and preview. Set flags win over the
// config file and environment.
type renderFlags struct {
	dark    bool
	screens []string
	device  string
	output  string
	locale  string
}

func bindRenderFlags(cmd *cobra.Command, flags *renderFlags) {
	cmd.Flags().BoolVar(&flags.dark, "dark", false, "Use the dark theme")
	cmd.Flags().StringSliceVar(&flags.screens, "screens", nil, "Screen ids to render (default all)")
	cmd.Flags().StringVar(&flags.device, "device", "", "Preview device frame (iphone13, pixel6, samsungs21)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().StringVar(&flags.locale, "locale", "", "Locale for generated labels")
}

// renderRequest merges config, flags and interactive answers.
func (a *app) renderRequest(ctx context.Context, cmd *cobra.Command, project ir.Project, flags *renderFlags, interactive bool) (orchestrator.Request, error) {
	opts := render.RenderOptions{
		DarkMode:  a.cfg.DarkMode,
		Device:    a.cfg.Device,
		ScreenIDs: a.cfg.Screens,
		Locale:    a.cfg.Locale,
	}
	if cmd.Flags().Changed("dark") {
		opts.DarkMode = flags.dark
	}
	if cmd.Flags().Changed("screens") {
		opts.ScreenIDs = flags.screens
	}
	if flags.device != "" {
		opts.Device = flags.device
	}
	if flags.locale != "" {
		opts.Locale = flags.locale
	}

	if interactive {
		session := prompt.NewSession(a.driver)
		ids, err := session.ChooseScreens(ctx, project)
		if err != nil {
			return orchestrator.Request{}, err
		}
		opts.ScreenIDs = ids
		if opts.DarkMode, err = session.ChooseDarkMode(ctx, opts.DarkMode || project.DarkMode); err != nil {
			return orchestrator.Request{}, err
		}
	}

	return orchestrator.Request{
		Project:       project,
		Theme:         a.cfg.Theme,
		RenderOptions: opts,
	}, nil
}

func (a *app) loadProject(cmd *cobra.Command, path string) (ir.Project, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return ir.Project{}, err
	}
	return orchestrator.DecodeProject(data, a.sanitizer())
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if strings.TrimSpace(path) == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "written to %s\n", path)
	return nil
}

func outputPath(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	return configured
}
