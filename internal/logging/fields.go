// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldDir        = "dir"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Analysis fields.
	FieldKind        = "kind"
	FieldSize        = "size"
	FieldFormat      = "format"
	FieldFacts       = "facts"
	FieldDiagnostics = "diagnostics"
	FieldStrictCRC   = "strict_crc"

	// Comparison fields.
	FieldImages   = "images"
	FieldVariants = "variants"
	FieldSmallest = "smallest"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
