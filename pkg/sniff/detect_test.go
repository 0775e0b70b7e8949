package sniff_test

import (
	"testing"

	"github.com/yaklabco/imghex/pkg/sniff"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected sniff.Kind
	}{
		{
			name:     "png signature",
			data:     []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00},
			expected: sniff.KindPNG,
		},
		{
			name:     "jpeg signature",
			data:     []byte{0xFF, 0xD8, 0xFF, 0xE0},
			expected: sniff.KindJPEG,
		},
		{
			name:     "bmp signature",
			data:     []byte{'B', 'M', 0x46, 0x00, 0x00, 0x00},
			expected: sniff.KindBMP,
		},
		{
			name:     "truncated png signature is not png",
			data:     []byte{0x89, 'P', 'N', 'G'},
			expected: sniff.KindUnknown,
		},
		{
			name:     "arbitrary bytes",
			data:     []byte{0x00, 0x01, 0x02, 0x03},
			expected: sniff.KindUnknown,
		},
		{
			name:     "empty buffer",
			data:     nil,
			expected: sniff.KindUnknown,
		},
		{
			name:     "single byte buffer",
			data:     []byte{0xFF},
			expected: sniff.KindUnknown,
		},
		{
			name:     "text starting with B",
			data:     []byte("Banana"),
			expected: sniff.KindUnknown,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := sniff.Detect(testCase.data); got != testCase.expected {
				t.Errorf("Detect() = %v, want %v", got, testCase.expected)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     sniff.Kind
		expected string
	}{
		{sniff.KindPNG, "PNG"},
		{sniff.KindJPEG, "JPEG"},
		{sniff.KindBMP, "BMP"},
		{sniff.KindUnknown, "Unknown"},
		{sniff.Kind("bogus"), "Unknown"},
	}

	for _, testCase := range tests {
		if got := testCase.kind.String(); got != testCase.expected {
			t.Errorf("Kind(%q).String() = %q, want %q", string(testCase.kind), got, testCase.expected)
		}
	}
}
