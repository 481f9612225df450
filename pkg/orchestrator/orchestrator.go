package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-screengen/internal/logger"
	"github.com/goliatone/go-screengen/pkg/interpret"
	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/preview"
	"github.com/goliatone/go-screengen/pkg/render"
	"github.com/goliatone/go-screengen/pkg/renderers/flutter"
	"github.com/goliatone/go-screengen/pkg/sanitize"
)

const defaultRendererName = "flutter"

// ErrScreenNotFound is returned by Import when the target screen is missing.
var ErrScreenNotFound = errors.New("orchestrator: screen not found")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSanitizer replaces the sanitizer used for imports and raw documents.
func WithSanitizer(s *sanitize.Sanitizer) Option {
	return func(o *Orchestrator) {
		o.sanitizer = s
	}
}

// WithLogger routes orchestrator diagnostics to l. The default sanitizer
// logs through the same logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
		o.loggerSet = true
	}
}

// WithThemeSelector resolves palettes through a go-theme selector instead of
// the builtin light/dark tokens.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithTransformer registers a Transformer that runs on a copy of the project
// before rendering.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates sanitizing, theme resolution and rendering. It
// applies sensible defaults (flutter and preview renderers, builtin palette)
// while remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	sanitizer       *sanitize.Sanitizer
	logger          zerolog.Logger
	loggerSet       bool
	themeSelector   theme.ThemeSelector
	transformer     Transformer
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a rendering run.
type Request struct {
	// Project is the snapshot to render. Ignored when Document is set.
	Project ir.Project

	// Document is a raw project in JSON or YAML. It is decoded and every
	// element is sanitized before rendering.
	Document []byte

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// Theme names the go-theme manifest to select when a selector is
	// configured. Empty selects the builtin manifest name.
	Theme string

	// RenderOptions carries dark mode, device and screen subset. Dark mode is
	// also enabled when the project itself asks for it.
	RenderOptions render.RenderOptions
}

// Generate resolves the project and palette, then renders through the
// requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if err := o.ready(ctx); err != nil {
		return nil, err
	}

	project, err := o.resolveProject(req)
	if err != nil {
		return nil, err
	}
	if err := o.applyTransformer(ctx, &project); err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	opts.DarkMode = opts.DarkMode || project.DarkMode
	if opts.Palette == nil {
		palette, err := interpret.SelectNamedPalette(o.themeSelector, req.Theme, opts.DarkMode)
		if err != nil {
			o.logger.Warn().Err(err).Str("theme", req.Theme).Msg("orchestrator: theme selection failed, using builtin palette")
		}
		opts.Palette = &palette
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	o.logger.Debug().
		Str("renderer", renderer.Name()).
		Int("screens", len(project.Screens)).
		Bool("dark", opts.DarkMode).
		Msg("orchestrator: rendering project")

	output, err := renderer.Render(ctx, project, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Import decodes a generative batch, sanitizes it and appends the elements to
// the screen identified by screenID. The input project is left untouched; the
// returned project holds the appended elements with fresh ids.
func (o *Orchestrator) Import(ctx context.Context, project ir.Project, screenID string, batch []byte) (ir.Project, error) {
	if err := o.ready(ctx); err != nil {
		return project, err
	}

	idx := -1
	for i, screen := range project.Screens {
		if screen.ID == screenID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return project, fmt.Errorf("%w: %q", ErrScreenNotFound, screenID)
	}

	raw, err := sanitize.DecodeBatch(batch)
	if err != nil {
		return project, fmt.Errorf("orchestrator: decode batch: %w", err)
	}
	added := o.sanitizer.Import(raw)

	out := project.Clone()
	out.Screens[idx].Elements = append(out.Screens[idx].Elements, added...)

	o.logger.Debug().
		Str("screen", screenID).
		Int("elements", len(added)).
		Msg("orchestrator: imported batch")
	return out, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

// RendererInfo describes the registered renderers.
func (o *Orchestrator) RendererInfo() []render.Info {
	if o.registry == nil {
		return nil
	}
	return o.registry.Describe()
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.initialiseErr; err != nil {
		return err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) resolveProject(req Request) (ir.Project, error) {
	if len(bytes.TrimSpace(req.Document)) == 0 {
		return req.Project.Clone(), nil
	}
	project, err := DecodeProject(req.Document, o.sanitizer)
	if err != nil {
		return ir.Project{}, err
	}
	return project, nil
}

type rawProject struct {
	Name     string      `json:"name" yaml:"name"`
	DarkMode bool        `json:"darkMode" yaml:"darkMode"`
	Screens  []rawScreen `json:"screens" yaml:"screens"`
}

type rawScreen struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Elements []any  `json:"elements" yaml:"elements"`
}

// DecodeProject reads a JSON or YAML project document and restores every
// screen through s, so untrusted documents meet the element invariants.
// Screens without an id get one derived from their position.
func DecodeProject(data []byte, s *sanitize.Sanitizer) (ir.Project, error) {
	if s == nil {
		s = sanitize.New()
	}
	var doc rawProject
	if err := json.Unmarshal(data, &doc); err != nil {
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return ir.Project{}, fmt.Errorf("orchestrator: decode project: %w", errors.Join(err, yerr))
		}
	}

	project := ir.Project{Name: doc.Name, DarkMode: doc.DarkMode}
	if len(doc.Screens) > 0 {
		project.Screens = make([]ir.Screen, 0, len(doc.Screens))
	}
	for i, screen := range doc.Screens {
		id := screen.ID
		if id == "" {
			id = fmt.Sprintf("screen-%d", i+1)
		}
		project.Screens = append(project.Screens, ir.Screen{
			ID:       id,
			Name:     sanitize.CleanText(screen.Name),
			Elements: s.Restore(screen.Elements),
		})
	}
	return project, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, project *ir.Project) error {
	if o.transformer == nil || project == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, project); err != nil {
		return fmt.Errorf("orchestrator: transform project: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if !o.loggerSet {
		o.logger = logger.Default()
	}
	if o.sanitizer == nil {
		o.sanitizer = sanitize.New(sanitize.WithLogger(o.logger))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		code, err := flutter.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(code)
		}
		o.registry.MustRegister(preview.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
