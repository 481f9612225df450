package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-screengen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-screengen/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-global.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-filter.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_TrimBlocksAndIndent(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTrimBlocks())

	result, err := engine.RenderTemplate("trim", map[string]any{
		"items": []string{"a&b", "c"},
		"code":  "x(\ny\n)",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "trim.golden"))
	if result != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("Text({{ label|trim }}, size: {{ size }})", map[string]any{"label": "  Hi  ", "size": "14.0"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "Text(Hi, size: 14.0)" {
		t.Fatalf("unexpected render string result %q", result)
	}
}

func TestGoTemplateEngine_StructData(t *testing.T) {
	engine := newEngine(t)
	type greeting struct {
		Name string `json:"name"`
	}

	result, err := engine.RenderTemplate("hello", greeting{Name: "Grace"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Grace!\n" {
		t.Fatalf("unexpected result %q", result)
	}

	if _, err := engine.RenderTemplate("hello", []string{"x"}); err == nil {
		t.Fatalf("expected error for non-object data")
	}
}

func TestGoTemplateEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestTrimBlocks(t *testing.T) {
	src := "a\n  {% if x %}\n\nb\n\t{% endif %}\nc {{ v }}\n"
	got := string(gotemplate.TrimBlocks([]byte(src)))
	if got != "a\n{% if x %}\nb\n{% endif %}c {{ v }}\n" {
		t.Fatalf("unexpected trimmed source %q", got)
	}
}

func TestGoTemplateEngine_TrimBlocksStableAcrossRenders(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTrimBlocks())
	data := map[string]any{"items": []string{"a", "b"}}
	want := "\n  a\n\n  b\ndone\n"

	for i := 0; i < 3; i++ {
		got, err := engine.RenderTemplate("spaced", data)
		if err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("render %d: got %q, want %q", i, got, want)
		}
	}

	inline := "{% if on %}\n\nyes\n{% endif %}\n"
	for i := 0; i < 2; i++ {
		got, err := engine.RenderString(inline, map[string]any{"on": true})
		if err != nil {
			t.Fatalf("render string %d: %v", i, err)
		}
		if got != "\nyes\n" {
			t.Fatalf("render string %d: got %q", i, got)
		}
	}
}

func TestGoTemplateEngine_ConcurrentRenders(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTrimBlocks())
	data := map[string]any{"items": []string{"a", "b"}}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := engine.RenderTemplate("spaced", data)
			if err != nil {
				errs <- err
				return
			}
			if got != "\n  a\n\n  b\ndone\n" {
				errs <- fmt.Errorf("unexpected output %q", got)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestIndent(t *testing.T) {
	got := gotemplate.Indent("a(\n\nb\n)", 4)
	if got != "a(\n\n    b\n    )" {
		t.Fatalf("unexpected indent %q", got)
	}
	if got := gotemplate.Indent("single", 4); got != "single" {
		t.Fatalf("single line should be untouched, got %q", got)
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(templatesFS)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
