// Package ir defines the flat design intermediate representation shared by the
// sanitizer, the preview renderer, and the code generator. Values are plain
// data: callers pass snapshots and receive new values back.
package ir
