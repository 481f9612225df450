// Package sanitize coerces untrusted element batches, typically produced by a
// generative collaborator, into canonical design elements. Sanitization never
// fails: malformed values are replaced by registry defaults, unknown types
// become containers and geometry is clamped onto the canvas.
package sanitize
