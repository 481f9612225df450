package preview

import (
	"strings"

	"github.com/goliatone/go-screengen/pkg/interpret"
	"github.com/goliatone/go-screengen/pkg/ir"
)

// Device is a phone frame the canvas is previewed in.
type Device struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DefaultDevice is used when no device, or an unknown one, is requested.
const DefaultDevice = "iphone13"

// FrameScale shrinks canvas coordinates into the device frame.
const FrameScale = 0.5

var devices = []Device{
	{Name: "iphone13", Label: "iPhone 13", Width: 390, Height: 844},
	{Name: "pixel6", Label: "Pixel 6", Width: 412, Height: 915},
	{Name: "samsungs21", Label: "Samsung S21", Width: 360, Height: 800},
}

// Devices lists the supported frames.
func Devices() []Device {
	out := make([]Device, len(devices))
	copy(out, devices)
	return out
}

// LookupDevice finds a frame by name, case insensitively.
func LookupDevice(name string) (Device, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range devices {
		if d.Name == name {
			return d, true
		}
	}
	return Device{}, false
}

// Placed is an element's node with its scaled box inside the frame.
type Placed struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Node   Node    `json:"node"`
}

// Frame is a whole screen as drawn in a device.
type Frame struct {
	Screen     string   `json:"screen"`
	Name       string   `json:"name"`
	Device     Device   `json:"device"`
	Dark       bool     `json:"dark"`
	Scale      float64  `json:"scale"`
	Background string   `json:"background"`
	Elements   []Placed `json:"elements"`
}

type frameConfig struct {
	device  string
	palette *interpret.Palette
}

// FrameOption customises RenderScreen.
type FrameOption func(*frameConfig)

// WithDevice selects the device frame. Unknown names use DefaultDevice.
func WithDevice(name string) FrameOption {
	return func(cfg *frameConfig) {
		cfg.device = name
	}
}

// WithPalette overrides the builtin palette.
func WithPalette(p interpret.Palette) FrameOption {
	return func(cfg *frameConfig) {
		cfg.palette = &p
	}
}

// RenderScreen draws every element of screen in list order, which is also
// stacking order.
func RenderScreen(screen ir.Screen, dark bool, opts ...FrameOption) Frame {
	cfg := frameConfig{device: DefaultDevice}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	pal := interpret.NewPalette(dark)
	if cfg.palette != nil {
		pal = *cfg.palette
	}
	device, ok := LookupDevice(cfg.device)
	if !ok {
		device, _ = LookupDevice(DefaultDevice)
	}

	frame := Frame{
		Screen:     screen.ID,
		Name:       screen.Name,
		Device:     device,
		Dark:       pal.Dark,
		Scale:      FrameScale,
		Background: pal.Token(interpret.TokenCanvas),
		Elements:   make([]Placed, 0, len(screen.Elements)),
	}
	for _, el := range screen.Elements {
		frame.Elements = append(frame.Elements, Placed{
			ID:     el.ID,
			Type:   el.Type.String(),
			Left:   float64(el.X) * FrameScale,
			Top:    float64(el.Y) * FrameScale,
			Width:  float64(el.Width) * FrameScale,
			Height: float64(el.Height) * FrameScale,
			Node:   RenderWith(el, pal),
		})
	}
	return frame
}
