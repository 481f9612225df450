package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-screengen/pkg/ir"
)

// GoldenDir is where package tests keep their snapshots.
const GoldenDir = "testdata/golden"

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// Golden returns a goldie instance reading testdata/golden/<name>.golden.
// Run tests with -update to rewrite the snapshots.
func Golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
}

// Element builds an element without running it through the sanitizer.
func Element(id string, t ir.ComponentType, x, y, w, h int, props ir.Properties) ir.DesignElement {
	return ir.DesignElement{ID: id, Type: t, X: x, Y: y, Width: w, Height: h, Properties: props}
}

// ShopProject is a two screen project: a home screen whose button navigates
// to an empty cart screen.
func ShopProject() ir.Project {
	return ir.Project{
		Name: "Shop",
		Screens: []ir.Screen{
			{
				ID:   "home",
				Name: "Home",
				Elements: []ir.DesignElement{
					Element("b1", ir.TypeButton, 10, 20, 120, 48, ir.Properties{"text": "Go", "navigateTo": "cart"}),
				},
			},
			{ID: "cart", Name: "Cart"},
		},
	}
}

// DecodeProject decodes a JSON or YAML project document as written, failing
// the test on error.
func DecodeProject(t *testing.T, data []byte) ir.Project {
	t.Helper()

	var project ir.Project
	if err := json.Unmarshal(data, &project); err == nil {
		return project
	}
	if err := yaml.Unmarshal(data, &project); err != nil {
		t.Fatalf("decode project: %v", err)
	}
	return project
}

// MustReadGoldenString reads a file that is compared byte for byte.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(data)
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written, so callers can assert they match.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
