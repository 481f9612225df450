// Package flutter emits a single Dart source file describing a Flutter app
// with one route per screen. Every element becomes an absolutely Positioned
// widget inside its screen's Stack.
//
// Output is deterministic: the same screens and mode always produce the same
// bytes. Widget snippets are pongo2 templates embedded in the binary; the
// view models feeding them are computed in Go with every number and string
// already formatted as a Dart literal.
package flutter
