package render

import "strings"

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the text used when a key cannot be
// translated. err is ErrMissingTranslator when no translator is configured.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Message keys for the fixed labels emitted by renderers.
const (
	LabelAppTitleKey     = "app.title"
	LabelDrawerHeaderKey = "drawer.header"
	LabelEmptyScreenKey  = "screen.empty"
)

// Labels are the fixed, user-facing strings of a generated app.
type Labels struct {
	AppTitle     string
	DrawerHeader string
	EmptyScreen  string
}

// DefaultLabels returns the untranslated labels.
func DefaultLabels() Labels {
	return Labels{
		AppTitle:     "Flutter UI App",
		DrawerHeader: "Screens",
		EmptyScreen:  "No elements added yet",
	}
}

// LocalizeLabels translates DefaultLabels through opts.Translator. Without a
// translator, or when a key is missing, the default text is kept unless
// opts.OnMissing says otherwise.
func LocalizeLabels(opts RenderOptions) Labels {
	labels := DefaultLabels()
	if opts.Translator == nil && opts.OnMissing == nil {
		return labels
	}
	labels.AppTitle = translate(opts.Locale, LabelAppTitleKey, labels.AppTitle, opts.Translator, opts.OnMissing)
	labels.DrawerHeader = translate(opts.Locale, LabelDrawerHeaderKey, labels.DrawerHeader, opts.Translator, opts.OnMissing)
	labels.EmptyScreen = translate(opts.Locale, LabelEmptyScreenKey, labels.EmptyScreen, opts.Translator, opts.OnMissing)
	return labels
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
