// Package template defines the template engine contract used by code
// renderers. The gotemplate subpackage implements it on top of pongo2.
package template
