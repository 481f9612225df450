package preview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/render"
)

// Renderer serves preview frames as JSON through the render registry.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the preview renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "preview"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render emits one frame per selected screen.
func (r *Renderer) Render(_ context.Context, project ir.Project, opts render.RenderOptions) ([]byte, error) {
	selected, err := render.SelectScreens(project, opts)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	pal := opts.ResolvePalette()
	frames := make([]Frame, 0, len(selected.Screens))
	for _, screen := range selected.Screens {
		frames = append(frames, RenderScreen(screen, pal.Dark, WithDevice(opts.Device), WithPalette(pal)))
	}
	data, err := json.MarshalIndent(frames, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("preview: encode frames: %w", err)
	}
	return append(data, '\n'), nil
}
