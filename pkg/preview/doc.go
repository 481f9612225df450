// Package preview describes how each element looks on the design canvas.
//
// The output is a tree of Nodes: a structural, framework-neutral rendition
// of a widget with CSS-flavoured styles. Hosts turn it into DOM, terminal
// output or JSON. Colors, fallback datasets and alignment keywords come from
// package interpret, so the preview always agrees with generated code.
package preview
