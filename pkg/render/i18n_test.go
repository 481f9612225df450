package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-screengen/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestLocalizeLabels_UsesKeysAndFallbacks(t *testing.T) {
	labels := render.LocalizeLabels(render.RenderOptions{
		Locale:     "es",
		Translator: stubTranslator{render.LabelDrawerHeaderKey: "Pantallas"},
	})

	want := render.DefaultLabels()
	want.DrawerHeader = "Pantallas"
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalizeLabels_OnMissingWithoutTranslator(t *testing.T) {
	var seen []error
	labels := render.LocalizeLabels(render.RenderOptions{
		Locale: "fr",
		OnMissing: func(locale, key string, _ []any, err error) string {
			seen = append(seen, err)
			return locale + ":" + key
		},
	})

	if labels.AppTitle != "fr:app.title" {
		t.Fatalf("expected handler output, got %q", labels.AppTitle)
	}
	if len(seen) != 3 || !errors.Is(seen[0], render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator for every label, got %v", seen)
	}
}

func TestLocalizeLabels_Defaults(t *testing.T) {
	if diff := cmp.Diff(render.DefaultLabels(), render.LocalizeLabels(render.RenderOptions{})); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}
