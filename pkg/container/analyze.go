package container

import (
	"fmt"

	"github.com/yaklabco/imghex/pkg/sniff"
)

// Options configures an analysis pass.
type Options struct {
	// StrictCRC enables recomputing each PNG chunk's CRC-32 over its type
	// tag and payload and reporting mismatches against the declared value.
	// Off by default: the baseline walk trusts the declared CRC.
	StrictCRC bool
}

// Analyze detects the container kind of data and walks its structure.
// The returned report always covers whatever could be determined; an
// unknown kind yields a report with no facts rather than an error.
func Analyze(data []byte, opts Options) (*Report, error) {
	kind := sniff.Detect(data)
	report := &Report{
		ContainerKind: kind,
		Size:          len(data),
	}

	var (
		facts []Fact
		err   error
	)

	switch kind {
	case sniff.KindPNG:
		facts, err = WalkPNG(data, opts)
	case sniff.KindJPEG:
		facts, err = WalkJPEG(data, opts)
	case sniff.KindBMP:
		facts, err = WalkBMP(data, opts)
	case sniff.KindUnknown:
		// No parser is invoked for unknown buffers.
	}
	if err != nil {
		return nil, fmt.Errorf("analyze %s buffer: %w", kind, err)
	}

	report.Facts = facts
	return report, nil
}
