// Package config defines configuration types for imghex.
// These are pure data structures; loading and discovery live in load.go.
package config

// Config holds the merged configuration for an imghex run.
type Config struct {
	// Format is the report output format: "text" or "json".
	Format string `yaml:"format"`

	// StrictCRC enables PNG chunk CRC recomputation during analysis.
	StrictCRC bool `yaml:"strict_crc"`

	// HexPreviewLen is the number of buffer-head bytes in the hex preview.
	HexPreviewLen int `yaml:"hex_preview_len"`

	// NoHexDump suppresses the hex preview in text reports.
	NoHexDump bool `yaml:"no_hex_dump"`

	// Generate configures the test image generator.
	Generate GenerateConfig `yaml:"generate"`

	// Compare configures the compression comparison.
	Compare CompareConfig `yaml:"compare"`
}

// GenerateConfig controls the test image generator.
type GenerateConfig struct {
	// Dir is the output directory for generated images.
	Dir string `yaml:"dir"`
}

// CompareConfig controls the compression comparison.
type CompareConfig struct {
	// JPEGQualities are the JPEG quality levels to encode at.
	JPEGQualities []int `yaml:"jpeg_qualities"`

	// SummaryPath is the JSON summary output path ("" disables it).
	SummaryPath string `yaml:"summary_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:        "text",
		HexPreviewLen: 128,
		Generate: GenerateConfig{
			Dir: "test_images",
		},
		Compare: CompareConfig{
			JPEGQualities: []int{100, 95, 85, 75, 50, 25},
			SummaryPath:   "compression_analysis_results.json",
		},
	}
}
