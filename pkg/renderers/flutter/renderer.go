package flutter

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/goliatone/go-screengen/pkg/interpret"
	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/render"
	rendertemplate "github.com/goliatone/go-screengen/pkg/render/template"
	gotemplate "github.com/goliatone/go-screengen/pkg/render/template/gotemplate"
)

const (
	appTemplate    = "templates/app"
	screenTemplate = "templates/screen"
	widgetPrefix   = "templates/widgets/"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation. It
// must strip block tags the way the pongo2 engine does with WithTrimBlocks,
// otherwise the generated layout drifts.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Settings are the mode-dependent inputs of a generation run.
type Settings struct {
	Palette interpret.Palette
	Labels  render.Labels
}

// DefaultSettings uses the builtin palette and untranslated labels.
func DefaultSettings(dark bool) Settings {
	return Settings{Palette: interpret.NewPalette(dark), Labels: render.DefaultLabels()}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the flutter generator applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
			gotemplate.WithTrimBlocks(),
		)
		if err != nil {
			return nil, fmt.Errorf("flutter: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "flutter"
}

func (r *Renderer) ContentType() string {
	return "text/x-dart; charset=utf-8"
}

// Render generates the app for the screens selected by opts.
func (r *Renderer) Render(_ context.Context, project ir.Project, opts render.RenderOptions) ([]byte, error) {
	selected, err := render.SelectScreens(project, opts)
	if err != nil {
		return nil, fmt.Errorf("flutter: %w", err)
	}
	out, err := r.GenerateWith(selected.Screens, Settings{
		Palette: opts.ResolvePalette(),
		Labels:  render.LocalizeLabels(opts),
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Generate emits the app for screens using the builtin palette.
func (r *Renderer) Generate(screens []ir.Screen, dark bool) (string, error) {
	return r.GenerateWith(screens, DefaultSettings(dark))
}

// GenerateWith emits the app for screens. Errors only come from the template
// engine.
func (r *Renderer) GenerateWith(screens []ir.Screen, settings Settings) (string, error) {
	if r == nil || r.templates == nil {
		return "", fmt.Errorf("flutter: template renderer is nil")
	}

	names := make([]string, len(screens))
	for i, screen := range screens {
		names[i] = screen.Name
	}
	classes := classNames(names)

	routes := make(map[string]string, len(screens))
	var routeEntries []map[string]string
	for i, screen := range screens {
		if _, dup := routes[screen.ID]; dup {
			continue
		}
		routes[screen.ID] = dartString("/" + screen.ID)
		routeEntries = append(routeEntries, map[string]string{
			"route": routes[screen.ID],
			"class": classes[i],
		})
	}

	icons := &iconSet{names: map[string]struct{}{}}
	entries := make([]map[string]string, 0, len(screens))
	bodies := make([]string, 0, len(screens))
	for i, screen := range screens {
		body, err := r.screen(screen, classes[i], routes, icons, settings)
		if err != nil {
			return "", err
		}
		bodies = append(bodies, body)
		entries = append(entries, map[string]string{
			"title": dartString(screen.Name),
			"route": routes[screen.ID],
		})
	}

	brightness := "light"
	if settings.Palette.Dark {
		brightness = "dark"
	}
	app := map[string]string{
		"title":            dartString(settings.Labels.AppTitle),
		"drawerHeader":     dartString(settings.Labels.DrawerHeader),
		"brightness":       brightness,
		"scaffold":         argb(settings.Palette.Token(interpret.TokenScaffold)),
		"appBar":           argb(settings.Palette.Token(interpret.TokenAppBar)),
		"appBarForeground": argb(settings.Palette.Token(interpret.TokenAppBarForeground)),
	}
	if len(routeEntries) > 0 {
		app["initialRoute"] = routeEntries[0]["route"]
	}

	out, err := r.templates.RenderTemplate(appTemplate, map[string]any{
		"app":     app,
		"routes":  routeEntries,
		"screens": entries,
		"classes": bodies,
		"hasList": icons.used,
		"icons":   iconCases(icons.names),
	})
	if err != nil {
		return "", fmt.Errorf("flutter: render app: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

func (r *Renderer) screen(screen ir.Screen, class string, routes map[string]string, icons *iconSet, settings Settings) (string, error) {
	states := interpret.StateFields(screen.Elements)
	decls := make([]string, 0, len(states))
	for _, sv := range states {
		decls = append(decls, stateDecl(sv))
	}

	elements := make([]map[string]string, 0, len(screen.Elements))
	for i, el := range screen.Elements {
		wc := widgetContext{index: i, palette: settings.Palette, routes: routes, icons: icons}
		w := wc.build(el)
		code, err := r.templates.RenderTemplate(widgetPrefix+w.template, w.data)
		if err != nil {
			return "", fmt.Errorf("flutter: render %s widget: %w", el.Type, err)
		}
		elements = append(elements, map[string]string{
			"left":   fixed(float64(el.X)),
			"top":    fixed(float64(el.Y)),
			"width":  fixed(float64(el.Width)),
			"height": fixed(float64(el.Height)),
			"widget": strings.TrimRight(code, "\n"),
		})
	}

	out, err := r.templates.RenderTemplate(screenTemplate, map[string]any{
		"screen": map[string]any{
			"class":    class,
			"title":    dartString(screen.Name),
			"state":    decls,
			"elements": elements,
		},
		"labels": map[string]string{
			"emptyScreen": comment(settings.Labels.EmptyScreen),
		},
	})
	if err != nil {
		return "", fmt.Errorf("flutter: render screen %q: %w", screen.ID, err)
	}
	return strings.TrimRight(out, "\n"), nil
}

func stateDecl(sv interpret.StateVar) string {
	switch v := sv.Initial.(type) {
	case bool:
		return "bool " + sv.Name + " = " + boolLiteral(v) + ";"
	case string:
		return "String? " + sv.Name + " = " + dartString(v) + ";"
	default:
		return "String? " + sv.Name + " = null;"
	}
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
	defaultErr      error
)

// Generate emits a Flutter app for screens with the embedded templates and
// the builtin palette.
func Generate(screens []ir.Screen, dark bool) (string, error) {
	defaultOnce.Do(func() {
		defaultRenderer, defaultErr = New()
	})
	if defaultErr != nil {
		return "", defaultErr
	}
	return defaultRenderer.Generate(screens, dark)
}
