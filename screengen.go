// Package screengen turns designed mobile screens into preview frames and
// Flutter source. The heavy lifting lives in the pkg/ packages; this package
// re-exports the common types and offers one-call helpers over the
// orchestrator.
package screengen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/orchestrator"
	"github.com/goliatone/go-screengen/pkg/preview"
	"github.com/goliatone/go-screengen/pkg/render"
	"github.com/goliatone/go-screengen/pkg/sanitize"
)

// Project is the ordered screen collection handed to renderers.
type Project = ir.Project

// Screen is an ordered list of positioned elements.
type Screen = ir.Screen

// DesignElement is one positioned component on a screen.
type DesignElement = ir.DesignElement

// RenderOptions describes per-request overrides such as dark mode, device
// and the screen subset.
type RenderOptions = render.RenderOptions

// Frame is the preview of one screen inside a device frame.
type Frame = preview.Frame

// Renderer names registered by default.
const (
	RendererFlutter = "flutter"
	RendererPreview = "preview"
)

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate renders every screen of project as a Flutter app.
func Generate(ctx context.Context, project Project, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Project:  project,
		Renderer: RendererFlutter,
	})
}

// GenerateFromDocument decodes and sanitizes a raw JSON or YAML project
// before rendering it with the named renderer.
func GenerateFromDocument(ctx context.Context, document []byte, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document:      document,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}

// Preview builds the preview frame of every screen in project.
func Preview(project Project, opts RenderOptions) []Frame {
	opts.DarkMode = opts.DarkMode || project.DarkMode
	pal := opts.ResolvePalette()
	selected, err := render.SelectScreens(project, opts)
	if err != nil {
		return nil
	}
	frames := make([]Frame, 0, len(selected.Screens))
	for _, screen := range selected.Screens {
		frames = append(frames, preview.RenderScreen(screen, pal.Dark, preview.WithDevice(opts.Device), preview.WithPalette(pal)))
	}
	return frames
}

// Sanitize coerces an untrusted element list into canonical elements. It
// never fails.
func Sanitize(raw []any) []DesignElement {
	return sanitize.Sanitize(raw)
}

// ImportBatch decodes a generative response and sanitizes the element array
// it carries, assigning fresh ids.
func ImportBatch(data []byte) ([]DesignElement, error) {
	raw, err := sanitize.DecodeBatch(data)
	if err != nil {
		return nil, err
	}
	return sanitize.Import(raw), nil
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// palettes are resolved from a caller supplied manifest.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}
