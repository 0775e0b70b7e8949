package container

import "errors"

// ErrWrongFormat is returned when a format-specific walk is invoked on a
// buffer the detector classifies as a different kind. This is the one
// condition treated as caller misuse rather than recovered into a
// diagnostic fact.
var ErrWrongFormat = errors.New("wrong container format")
