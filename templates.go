package screengen

import (
	"io/fs"

	"github.com/goliatone/go-screengen/pkg/renderers/flutter"
)

// EmbeddedTemplates exposes the built-in Flutter templates so callers can
// copy or extend them and pass the result back through flutter.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return flutter.TemplatesFS()
}
