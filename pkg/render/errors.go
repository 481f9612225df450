package render

import "errors"

var (
	// ErrRendererNotFound is returned by Registry.Get for unknown names.
	ErrRendererNotFound = errors.New("render: renderer not found")
	// ErrNoScreens is returned when nothing is left to render after subset
	// selection.
	ErrNoScreens = errors.New("render: project has no screens to render")
	// ErrMissingTranslator is passed to MissingTranslationHandler when no
	// translator is configured.
	ErrMissingTranslator = errors.New("render: translator not configured")
)
