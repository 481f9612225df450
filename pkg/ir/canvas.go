package ir

import "github.com/google/uuid"

// Logical canvas size every position is expressed in.
const (
	CanvasWidth  = 360
	CanvasHeight = 640
)

// Rect is an integer box on the canvas.
type Rect struct {
	X, Y, Width, Height int
}

// Size is a minimum width/height pair.
type Size struct {
	Width, Height int
}

// Fit clamps r into the canvas. The origin is clamped first, the size is
// floored to min, then the size shrinks to the canvas edge. When the edge
// leaves less room than the floor, the origin moves back instead.
func Fit(r Rect, min Size) Rect {
	out := r
	out.X = clamp(out.X, 0, CanvasWidth)
	out.Y = clamp(out.Y, 0, CanvasHeight)
	out.Width, out.X = fitAxis(out.Width, out.X, min.Width, CanvasWidth)
	out.Height, out.Y = fitAxis(out.Height, out.Y, min.Height, CanvasHeight)
	return out
}

// Contains reports whether r lies fully inside the canvas.
func (r Rect) Contains() bool {
	return r.X >= 0 && r.Y >= 0 &&
		r.X+r.Width <= CanvasWidth && r.Y+r.Height <= CanvasHeight
}

func fitAxis(length, origin, floor, limit int) (int, int) {
	if floor > limit {
		floor = limit
	}
	if length < floor {
		length = floor
	}
	if origin+length > limit {
		length = limit - origin
	}
	if length < floor {
		length = floor
		origin = limit - floor
	}
	return length, origin
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NewElementID returns a fresh, time ordered element identifier.
func NewElementID() string {
	return "element-" + uuid.Must(uuid.NewV7()).String()
}
