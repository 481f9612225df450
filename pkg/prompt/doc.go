// Package prompt drives interactive terminal questions for the CLI: picking
// screens, device and theme mode, and editing an element's properties from
// its schema descriptors. The Driver interface keeps the flows testable
// without a terminal; NewSurveyDriver is the real implementation.
package prompt
