package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/schema"
)

// scriptedDriver answers by prompt message and falls back to the defaults.
type scriptedDriver struct {
	answers map[string]any
	asked   []string
	err     error
}

func (d *scriptedDriver) answer(msg string) (any, bool) {
	d.asked = append(d.asked, msg)
	v, ok := d.answers[msg]
	return v, ok
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	if v, ok := d.answer(cfg.Message); ok {
		s := v.(string)
		if cfg.Validator != nil {
			if err := cfg.Validator(s); err != nil {
				return "", err
			}
		}
		return s, nil
	}
	return cfg.Default, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if v, ok := d.answer(cfg.Message); ok {
		return v.(bool), nil
	}
	return cfg.Default, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if v, ok := d.answer(cfg.Message); ok {
		return v.(int), nil
	}
	return cfg.DefaultIndex, nil
}

func (d *scriptedDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	if v, ok := d.answer(cfg.Message); ok {
		return v.([]int), nil
	}
	return cfg.Defaults, nil
}

func (d *scriptedDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	if v, ok := d.answer(cfg.Message); ok {
		return v.(string), nil
	}
	return cfg.Default, nil
}

func project() ir.Project {
	return ir.Project{Screens: []ir.Screen{
		{ID: "home", Name: "Home"},
		{ID: "cart", Name: "Cart"},
		{ID: "profile", Name: "Profile"},
	}}
}

func TestEditElementButton(t *testing.T) {
	driver := &scriptedDriver{answers: map[string]any{
		"Text":               "<i>Buy</i>",
		"Variant":            2,
		"Rounded":            false,
		"Padding":            "24",
		"Navigate To Screen": 2,
	}}
	el := ir.DesignElement{
		ID: "b1", Type: ir.TypeButton, X: 10, Y: 10, Width: 120, Height: 40,
		Properties: schema.DefaultProperties(ir.TypeButton),
	}

	got, err := NewSession(driver).EditElement(context.Background(), project(), el)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	want := schema.DefaultProperties(ir.TypeButton)
	want["text"] = "Buy"
	want["variant"] = "outline"
	want["rounded"] = false
	want["padding"] = float64(24)
	want["navigateTo"] = "cart"
	if diff := cmp.Diff(want, got.Properties); diff != "" {
		t.Fatalf("properties mismatch (-want +got):\n%s", diff)
	}
	if got.ID != "b1" || got.X != 10 || got.Width != 120 {
		t.Fatalf("geometry or id changed: %+v", got)
	}
	if len(driver.asked) != len(schema.Descriptors(ir.TypeButton)) {
		t.Fatalf("expected one question per descriptor, asked %v", driver.asked)
	}
}

func TestEditElementClearsNavigation(t *testing.T) {
	el := ir.DesignElement{ID: "b1", Type: ir.TypeButton, Width: 120, Height: 40,
		Properties: ir.Properties{"navigateTo": "cart"}}
	driver := &scriptedDriver{answers: map[string]any{"Navigate To Screen": 0}}

	got, err := NewSession(driver).EditElement(context.Background(), project(), el)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got.Properties["navigateTo"] != "" {
		t.Fatalf("expected cleared target, got %v", got.Properties["navigateTo"])
	}
}

func TestEditElementPropagatesDriverErrors(t *testing.T) {
	driver := &scriptedDriver{err: ErrAborted}
	el := ir.DesignElement{ID: "b1", Type: ir.TypeButton, Width: 120, Height: 40}

	_, err := NewSession(driver).EditElement(context.Background(), project(), el)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestEditElementRejectsBadColor(t *testing.T) {
	driver := &scriptedDriver{answers: map[string]any{"Color": "blue"}}
	el := ir.DesignElement{ID: "b1", Type: ir.TypeButton, Width: 120, Height: 40}

	if _, err := NewSession(driver).EditElement(context.Background(), project(), el); err == nil {
		t.Fatalf("expected validator error for a named color")
	}
}

func TestChooseScreens(t *testing.T) {
	cases := map[string]struct {
		picked []int
		want   []string
	}{
		"all selected":   {picked: []int{0, 1, 2}, want: nil},
		"none means all": {picked: nil, want: nil},
		"subset":         {picked: []int{0, 2}, want: []string{"home", "profile"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			driver := &scriptedDriver{answers: map[string]any{"Screens to render": tc.picked}}
			got, err := NewSession(driver).ChooseScreens(context.Background(), project())
			if err != nil {
				t.Fatalf("choose: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("screens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChooseScreensSkipsSingleScreen(t *testing.T) {
	driver := &scriptedDriver{}
	got, err := NewSession(driver).ChooseScreens(context.Background(), ir.Project{Screens: []ir.Screen{{ID: "a"}}})
	if err != nil || got != nil || len(driver.asked) != 0 {
		t.Fatalf("expected no question, got %v %v %v", got, err, driver.asked)
	}
}

func TestChooseDeviceAndDarkMode(t *testing.T) {
	driver := &scriptedDriver{answers: map[string]any{"Device frame": 1, "Use the dark theme?": true}}
	s := NewSession(driver)

	device, err := s.ChooseDevice(context.Background(), "iphone13")
	if err != nil || device != "pixel6" {
		t.Fatalf("expected pixel6, got %q (%v)", device, err)
	}
	dark, err := s.ChooseDarkMode(context.Background(), false)
	if err != nil || !dark {
		t.Fatalf("expected dark mode, got %v (%v)", dark, err)
	}
}
