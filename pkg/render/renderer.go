package render

import (
	"context"

	"github.com/goliatone/go-screengen/pkg/ir"
)

// Renderer converts a project snapshot into a byte representation (Dart
// source, JSON preview frames, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, project ir.Project, options RenderOptions) ([]byte, error)
}
