package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-screengen/pkg/color"
	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/preview"
	"github.com/goliatone/go-screengen/pkg/sanitize"
	"github.com/goliatone/go-screengen/pkg/schema"
)

// noTarget is the select entry for a button that navigates nowhere.
const noTarget = "(none)"

// Session runs the CLI's question flows over a Driver.
type Session struct {
	driver    Driver
	sanitizer *sanitize.Sanitizer
}

// NewSession wraps driver. Edited elements are re-sanitized with a quiet
// sanitizer.
func NewSession(driver Driver) *Session {
	return &Session{
		driver:    driver,
		sanitizer: sanitize.New(sanitize.WithLogger(zerolog.Nop())),
	}
}

// ChooseScreens asks which screens to render; every screen is preselected.
// An empty answer keeps every screen.
func (s *Session) ChooseScreens(ctx context.Context, project ir.Project) ([]string, error) {
	if len(project.Screens) < 2 {
		return nil, nil
	}
	options := make([]string, len(project.Screens))
	defaults := make([]int, len(project.Screens))
	for i, screen := range project.Screens {
		options[i] = fmt.Sprintf("%s (%s)", screen.Name, screen.ID)
		defaults[i] = i
	}
	picked, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Screens to render",
		Options:  options,
		Defaults: defaults,
	})
	if err != nil {
		return nil, err
	}
	if len(picked) == 0 || len(picked) == len(project.Screens) {
		return nil, nil
	}
	ids := make([]string, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(project.Screens) {
			ids = append(ids, project.Screens[idx].ID)
		}
	}
	return ids, nil
}

// ChooseDarkMode asks for the theme mode.
func (s *Session) ChooseDarkMode(ctx context.Context, current bool) (bool, error) {
	return s.driver.Confirm(ctx, ConfirmConfig{
		Message: "Use the dark theme?",
		Default: current,
	})
}

// ChooseDevice asks for the preview device frame.
func (s *Session) ChooseDevice(ctx context.Context, current string) (string, error) {
	devices := preview.Devices()
	options := make([]string, len(devices))
	def := 0
	for i, d := range devices {
		options[i] = fmt.Sprintf("%s (%dx%d)", d.Label, d.Width, d.Height)
		if d.Name == current {
			def = i
		}
	}
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      "Device frame",
		Options:      options,
		DefaultIndex: def,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(devices) {
		return current, nil
	}
	return devices[idx].Name, nil
}

// EditElement asks for every property of el, in descriptor order, and
// returns the sanitized result. project supplies the navigation targets.
func (s *Session) EditElement(ctx context.Context, project ir.Project, el ir.DesignElement) (ir.DesignElement, error) {
	props := el.Properties.Clone()
	if props == nil {
		props = ir.Properties{}
	}
	for _, d := range schema.Descriptors(el.Type) {
		value, err := s.ask(ctx, project, d, props[d.Name])
		if err != nil {
			return el, fmt.Errorf("prompt: %s: %w", d.Name, err)
		}
		props[d.Name] = value
	}

	edited := el
	edited.Properties = props
	out := s.sanitizer.Element(0, edited.ToMap())
	out.ID = el.ID
	return out, nil
}

func (s *Session) ask(ctx context.Context, project ir.Project, d schema.Descriptor, current any) (any, error) {
	text := display(current)
	switch d.Kind {
	case schema.EditorBoolean:
		b, _ := schema.ToBool(current)
		return s.driver.Confirm(ctx, ConfirmConfig{Message: d.Label, Default: b})
	case schema.EditorNumber:
		return s.driver.Input(ctx, InputConfig{Message: d.Label, Default: text, Validator: validNumber})
	case schema.EditorColor:
		return s.driver.Input(ctx, InputConfig{Message: d.Label, Default: text, Help: "#RRGGBB", Validator: validColor})
	case schema.EditorSelect:
		labels := make([]string, len(d.Options))
		def := 0
		for i, opt := range d.Options {
			labels[i] = opt.Label
			if opt.Value == text {
				def = i
			}
		}
		idx, err := s.driver.Select(ctx, SelectConfig{Message: d.Label, Options: labels, DefaultIndex: def})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(d.Options) {
			return current, nil
		}
		return d.Options[idx].Value, nil
	case schema.EditorScreen:
		options := []string{noTarget}
		def := 0
		for i, screen := range project.Screens {
			options = append(options, fmt.Sprintf("%s (%s)", screen.Name, screen.ID))
			if screen.ID == text {
				def = i + 1
			}
		}
		idx, err := s.driver.Select(ctx, SelectConfig{Message: d.Label, Options: options, DefaultIndex: def})
		if err != nil {
			return nil, err
		}
		if idx <= 0 || idx > len(project.Screens) {
			return "", nil
		}
		return project.Screens[idx-1].ID, nil
	case schema.EditorOptions, schema.EditorColumns, schema.EditorJSON:
		return s.driver.TextArea(ctx, TextAreaConfig{Message: d.Label, Default: text, Help: "JSON"})
	default:
		return s.driver.Input(ctx, InputConfig{Message: d.Label, Default: text})
	}
}

func display(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

func validNumber(s string) error {
	if _, ok := schema.ToNumber(s); !ok {
		return errors.New("enter a number")
	}
	return nil
}

func validColor(s string) error {
	if s == "" || color.Valid(s) {
		return nil
	}
	return errors.New("enter a #RRGGBB color")
}
