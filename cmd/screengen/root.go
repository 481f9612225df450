package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-screengen/internal/config"
	"github.com/goliatone/go-screengen/internal/logger"
	"github.com/goliatone/go-screengen/pkg/orchestrator"
	"github.com/goliatone/go-screengen/pkg/prompt"
	"github.com/goliatone/go-screengen/pkg/sanitize"
)

type rootFlags struct {
	configPath  string
	envFile     string
	verbose     bool
	interactive bool
}

// app is built once per invocation from the merged config.
type app struct {
	cfg    config.Config
	log    zerolog.Logger
	driver prompt.Driver
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&app{})
}

// buildRootCmd wires every subcommand onto state. A driver already set on
// state is kept.
func buildRootCmd(state *app) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "screengen",
		Short:         "screengen previews designed mobile screens and generates Flutter code",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file with SCREENGEN_* overrides")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.interactive, "interactive", "i", false, "Ask for screens, device and theme mode")

	cmd.AddCommand(newGenerateCmd(state, flags))
	cmd.AddCommand(newPreviewCmd(state, flags))
	cmd.AddCommand(newSanitizeCmd(state))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newEditCmd(state))
	cmd.AddCommand(newLintCmd())

	return cmd
}

func (a *app) init(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(config.Source{
		File:     flags.configPath,
		EnvFiles: []string{flags.envFile},
	})
	if err != nil {
		return err
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	if a.driver == nil {
		a.driver = prompt.NewSurveyDriver()
	}
	return nil
}

func (a *app) sanitizer() *sanitize.Sanitizer {
	return sanitize.New(sanitize.WithLogger(a.log))
}

// orchestrator builds an orchestrator honouring the configured preset and
// theme file.
func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	options := []orchestrator.Option{
		orchestrator.WithLogger(a.log),
		orchestrator.WithSanitizer(a.sanitizer()),
	}
	if a.cfg.Preset != "" {
		dir, file := filepath.Split(a.cfg.Preset)
		if dir == "" {
			dir = "."
		}
		preset, err := orchestrator.NewJSONPresetTransformerFromFS(os.DirFS(dir), file)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTransformer(preset.WithSanitizer(a.sanitizer())))
	}
	if a.cfg.ThemeFile != "" {
		selector, err := loadThemeFile(a.cfg.ThemeFile)
		if err != nil {
			return nil, err
		}
		if a.cfg.Theme == "" {
			a.cfg.Theme = selector.manifest.Name
		}
		options = append(options, orchestrator.WithThemeSelector(selector))
	}
	return orchestrator.New(options...), nil
}

// manifestSelector serves a single manifest loaded from disk.
type manifestSelector struct {
	manifest *theme.Manifest
}

func (s manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name != "" && s.manifest.Name != "" && name != s.manifest.Name {
		return nil, fmt.Errorf("theme %q not found (file defines %q)", name, s.manifest.Name)
	}
	return &theme.Selection{Theme: s.manifest.Name, Variant: variant, Manifest: s.manifest}, nil
}

func loadThemeFile(path string) (manifestSelector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return manifestSelector{}, fmt.Errorf("read theme file: %w", err)
	}
	var manifest theme.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return manifestSelector{}, fmt.Errorf("decode theme file: %w", err)
	}
	return manifestSelector{manifest: &manifest}, nil
}
