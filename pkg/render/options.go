package render

import "github.com/goliatone/go-screengen/pkg/interpret"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the project.
type RenderOptions struct {
	// DarkMode selects the dark palette and theme block.
	DarkMode bool
	// Device names the preview frame (iphone13, pixel6, samsungs21). Code
	// renderers ignore it.
	Device string
	// ScreenIDs restricts rendering to the listed screens, in project order.
	// Empty means every screen.
	ScreenIDs []string
	// Palette overrides the builtin palette, typically resolved through a
	// go-theme selector by the orchestrator.
	Palette *interpret.Palette
	// Locale and Translator localise the fixed labels renderers emit.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// ResolvePalette returns the injected palette or the builtin one for the
// requested mode.
func (o RenderOptions) ResolvePalette() interpret.Palette {
	if o.Palette != nil {
		return *o.Palette
	}
	return interpret.NewPalette(o.DarkMode)
}
