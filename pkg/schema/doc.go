// Package schema is the component registry: default geometry, minimum size,
// default property bag, and property-editor descriptors for every palette
// type. The tables are built once at init and never mutated, so lookups are
// safe from any goroutine.
//
// Each type's properties are declared as a Go struct (ButtonProps,
// DropdownProps, ...) whose `prop` tags name the bag keys. The struct literal
// in the registry table is the default bag; Decode produces the typed view of
// an element that renderers consume.
package schema
