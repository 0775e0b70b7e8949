package cli

import "github.com/yaklabco/imghex/pkg/reporter"

// Exit codes for imghex.
const (
	// ExitSuccess indicates successful execution with no diagnostics.
	ExitSuccess = 0

	// ExitDiagnostics indicates analysis completed but found structural
	// problems or unreadable files.
	ExitDiagnostics = 1

	// ExitUnrecognized indicates a file failed format detection while
	// strict mode was on.
	ExitUnrecognized = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *reporter.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	for _, f := range result.Files {
		if f.Err != nil {
			return ExitDiagnostics
		}
		if f.Report != nil && len(f.Report.Diagnostics()) > 0 {
			return ExitDiagnostics
		}
	}

	if strict && hasUnrecognized(result) {
		return ExitUnrecognized
	}

	return ExitSuccess
}
