// Package orchestrator wires the sanitizer, the palette resolution and the
// renderer registry behind a single entry point. Callers hand it a project
// snapshot (or a raw JSON/YAML document) and a renderer name; generative
// element batches are merged into screens through Import.
package orchestrator
