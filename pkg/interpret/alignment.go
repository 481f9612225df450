package interpret

import "strings"

// MainAxis is a flex main-axis alignment keyword.
type MainAxis string

const (
	MainStart        MainAxis = "start"
	MainCenter       MainAxis = "center"
	MainEnd          MainAxis = "end"
	MainSpaceBetween MainAxis = "spaceBetween"
	MainSpaceAround  MainAxis = "spaceAround"
	MainSpaceEvenly  MainAxis = "spaceEvenly"
)

var mainAxisCSS = map[MainAxis]string{
	MainStart:        "flex-start",
	MainCenter:       "center",
	MainEnd:          "flex-end",
	MainSpaceBetween: "space-between",
	MainSpaceAround:  "space-around",
	MainSpaceEvenly:  "space-evenly",
}

// ParseMainAxis maps a keyword to a main-axis value. Unknown keywords, and
// "stretch" which is cross-axis only, resolve to start.
func ParseMainAxis(raw string) MainAxis {
	a := MainAxis(strings.TrimSpace(raw))
	if _, ok := mainAxisCSS[a]; ok {
		return a
	}
	return MainStart
}

// Flutter returns the MainAxisAlignment expression.
func (a MainAxis) Flutter() string {
	return "MainAxisAlignment." + string(a)
}

// CSS returns the justify-content value.
func (a MainAxis) CSS() string {
	return mainAxisCSS[a]
}

// CrossAxis is a flex cross-axis alignment keyword.
type CrossAxis string

const (
	CrossStart   CrossAxis = "start"
	CrossCenter  CrossAxis = "center"
	CrossEnd     CrossAxis = "end"
	CrossStretch CrossAxis = "stretch"
)

var crossAxisCSS = map[CrossAxis]string{
	CrossStart:   "flex-start",
	CrossCenter:  "center",
	CrossEnd:     "flex-end",
	CrossStretch: "stretch",
}

// ParseCrossAxis maps a keyword to a cross-axis value; unknown keywords
// resolve to start.
func ParseCrossAxis(raw string) CrossAxis {
	a := CrossAxis(strings.TrimSpace(raw))
	if _, ok := crossAxisCSS[a]; ok {
		return a
	}
	return CrossStart
}

// Flutter returns the CrossAxisAlignment expression.
func (a CrossAxis) Flutter() string {
	return "CrossAxisAlignment." + string(a)
}

// CSS returns the align-items value.
func (a CrossAxis) CSS() string {
	return crossAxisCSS[a]
}

// Edge is a position along one axis of a stack.
type Edge string

const (
	EdgeStart  Edge = "start"
	EdgeCenter Edge = "center"
	EdgeEnd    Edge = "end"
)

// CSS returns the flex alignment value for the edge.
func (e Edge) CSS() string {
	switch e {
	case EdgeCenter:
		return "center"
	case EdgeEnd:
		return "flex-end"
	default:
		return "flex-start"
	}
}

// StackAlignment is one of the nine stack anchor positions.
type StackAlignment string

const (
	TopLeft      StackAlignment = "topLeft"
	TopCenter    StackAlignment = "topCenter"
	TopRight     StackAlignment = "topRight"
	CenterLeft   StackAlignment = "centerLeft"
	Center       StackAlignment = "center"
	CenterRight  StackAlignment = "centerRight"
	BottomLeft   StackAlignment = "bottomLeft"
	BottomCenter StackAlignment = "bottomCenter"
	BottomRight  StackAlignment = "bottomRight"
)

var stackEdges = map[StackAlignment][2]Edge{
	TopLeft:      {EdgeStart, EdgeStart},
	TopCenter:    {EdgeCenter, EdgeStart},
	TopRight:     {EdgeEnd, EdgeStart},
	CenterLeft:   {EdgeStart, EdgeCenter},
	Center:       {EdgeCenter, EdgeCenter},
	CenterRight:  {EdgeEnd, EdgeCenter},
	BottomLeft:   {EdgeStart, EdgeEnd},
	BottomCenter: {EdgeCenter, EdgeEnd},
	BottomRight:  {EdgeEnd, EdgeEnd},
}

// ParseStackAlignment maps a keyword to a stack anchor; unknown keywords
// resolve to topLeft.
func ParseStackAlignment(raw string) StackAlignment {
	a := StackAlignment(strings.TrimSpace(raw))
	if _, ok := stackEdges[a]; ok {
		return a
	}
	return TopLeft
}

// Flutter returns the Alignment expression.
func (a StackAlignment) Flutter() string {
	return "Alignment." + string(a)
}

// Horizontal is the anchor's edge on the x axis.
func (a StackAlignment) Horizontal() Edge {
	return stackEdges[a][0]
}

// Vertical is the anchor's edge on the y axis.
func (a StackAlignment) Vertical() Edge {
	return stackEdges[a][1]
}
