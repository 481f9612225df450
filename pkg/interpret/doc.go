// Package interpret holds the interpretation rules shared by the preview
// renderer and the Flutter generator: alignment keywords, parsing of the JSON
// encoded sub-properties with their fallback datasets, color fallbacks,
// theme palette tokens, and naming of generated state fields. Both consumers
// call these functions instead of re-deriving the rules.
package interpret
