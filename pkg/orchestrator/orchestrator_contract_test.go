package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/orchestrator"
	"github.com/goliatone/go-screengen/pkg/preview"
	"github.com/goliatone/go-screengen/pkg/render"
	"github.com/goliatone/go-screengen/pkg/sanitize"
	"github.com/goliatone/go-screengen/pkg/testsupport"
)

func quietOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(append([]orchestrator.Option{orchestrator.WithLogger(zerolog.Nop())}, options...)...)
}

func TestOrchestrator_GenerateDefaultsToFlutter(t *testing.T) {
	orch := quietOrchestrator()

	out, err := orch.Generate(testsupport.Context(), orchestrator.Request{Project: testsupport.ShopProject()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	code := string(out)
	for _, want := range []string{
		"class HomeScreen extends StatefulWidget",
		"class CartScreen extends StatefulWidget",
		"Navigator.of(context).pushNamed('/cart')",
		"initialRoute: '/home'",
	} {
		if !strings.Contains(code, want) {
			t.Fatalf("expected %q in output:\n%s", want, code)
		}
	}
}

func TestOrchestrator_GeneratePreviewFrames(t *testing.T) {
	orch := quietOrchestrator()

	out, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Project:  testsupport.ShopProject(),
		Renderer: "preview",
		RenderOptions: render.RenderOptions{
			DarkMode:  true,
			Device:    "pixel6",
			ScreenIDs: []string{"home"},
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var frames []preview.Frame
	if err := json.Unmarshal(out, &frames); err != nil {
		t.Fatalf("decode frames: %v", err)
	}
	if len(frames) != 1 || frames[0].Screen != "home" {
		t.Fatalf("expected the home frame only, got %+v", frames)
	}
	if !frames[0].Dark || frames[0].Device.Name != "pixel6" {
		t.Fatalf("render options not honoured: %+v", frames[0])
	}
}

func TestOrchestrator_ProjectDarkModeEnablesDarkTheme(t *testing.T) {
	project := testsupport.ShopProject()
	project.DarkMode = true

	out, err := quietOrchestrator().Generate(testsupport.Context(), orchestrator.Request{Project: project})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "Brightness.dark") {
		t.Fatalf("expected dark theme block:\n%s", out)
	}
}

func TestOrchestrator_GenerateFromDocument(t *testing.T) {
	doc := []byte(`
name: Shop
screens:
  - id: home
    name: Home
    elements:
      - id: t1
        type: carousel
        x: 400
        y: 700
        width: 10
        height: 5
`)

	out, err := quietOrchestrator().Generate(testsupport.Context(), orchestrator.Request{
		Document: doc,
		Renderer: "preview",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var frames []preview.Frame
	if err := json.Unmarshal(out, &frames); err != nil {
		t.Fatalf("decode frames: %v", err)
	}
	el := frames[0].Elements[0]
	if el.ID != "t1" || el.Type != string(ir.TypeContainer) {
		t.Fatalf("expected sanitized container t1, got %+v", el)
	}
	if el.Left+el.Width > ir.CanvasWidth || el.Top+el.Height > ir.CanvasHeight {
		t.Fatalf("element escapes the canvas: %+v", el)
	}
}

func TestOrchestrator_RequiresContext(t *testing.T) {
	orch := quietOrchestrator()

	//nolint:staticcheck // nil context is the case under test
	if _, err := orch.Generate(nil, orchestrator.Request{Project: testsupport.ShopProject()}); err == nil {
		t.Fatalf("expected error for nil context")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := orch.Generate(ctx, orchestrator.Request{Project: testsupport.ShopProject()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOrchestrator_UnknownRenderer(t *testing.T) {
	_, err := quietOrchestrator().Generate(testsupport.Context(), orchestrator.Request{
		Project:  testsupport.ShopProject(),
		Renderer: "swiftui",
	})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestOrchestrator_NoScreens(t *testing.T) {
	_, err := quietOrchestrator().Generate(testsupport.Context(), orchestrator.Request{
		Project: testsupport.ShopProject(),
		RenderOptions: render.RenderOptions{
			ScreenIDs: []string{"missing"},
		},
	})
	if !errors.Is(err, render.ErrNoScreens) {
		t.Fatalf("expected ErrNoScreens, got %v", err)
	}
}

func TestOrchestrator_Renderers(t *testing.T) {
	got := quietOrchestrator().Renderers()
	if len(got) != 2 || got[0] != "flutter" || got[1] != "preview" {
		t.Fatalf("unexpected renderers %v", got)
	}
}

func TestOrchestrator_ImportAppendsSanitizedBatch(t *testing.T) {
	n := 0
	s := sanitize.New(sanitize.WithLogger(zerolog.Nop()), sanitize.WithIDGenerator(func() string {
		n++
		return "gen-" + string(rune('0'+n))
	}))
	orch := quietOrchestrator(orchestrator.WithSanitizer(s))

	batch := []byte("Here you go:\n```json\n[{\"type\":\"icon\",\"x\":\"30\",\"y\":40},{\"type\":\"carousel\"}]\n```")
	project := testsupport.ShopProject()

	got, err := orch.Import(testsupport.Context(), project, "cart", batch)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if len(project.Screens[1].Elements) != 0 {
		t.Fatalf("input project was mutated")
	}
	added := got.Screens[1].Elements
	if len(added) != 2 {
		t.Fatalf("expected 2 imported elements, got %d", len(added))
	}
	if added[0].ID != "gen-1" || added[0].X != 30 || added[0].Y != 40 {
		t.Fatalf("unexpected first element %+v", added[0])
	}
	if added[1].Type != ir.TypeContainer {
		t.Fatalf("expected container fallback, got %s", added[1].Type)
	}
}

func TestOrchestrator_ImportErrors(t *testing.T) {
	orch := quietOrchestrator()

	if _, err := orch.Import(testsupport.Context(), testsupport.ShopProject(), "nope", []byte("[]")); !errors.Is(err, orchestrator.ErrScreenNotFound) {
		t.Fatalf("expected ErrScreenNotFound, got %v", err)
	}
	if _, err := orch.Import(testsupport.Context(), testsupport.ShopProject(), "home", []byte("no array here")); !errors.Is(err, sanitize.ErrNoArray) {
		t.Fatalf("expected ErrNoArray, got %v", err)
	}
}
