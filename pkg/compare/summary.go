package compare

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// FormatStats aggregates variant sizes for one format across all images.
type FormatStats struct {
	// TotalSize is the summed size of every variant in this format.
	TotalSize int64 `json:"total_size"`

	// Count is the number of variants in this format.
	Count int `json:"count"`

	// AvgSize is TotalSize divided by Count.
	AvgSize float64 `json:"avg_size"`
}

// Summary is the full comparison result across a directory of images.
type Summary struct {
	// Images are the per-image analyses, in directory order.
	Images []ImageAnalysis `json:"images"`

	// Formats holds per-format aggregate statistics.
	Formats map[string]FormatStats `json:"format_stats"`
}

// computeStats fills Formats from Images.
func (s *Summary) computeStats() {
	stats := make(map[string]FormatStats)
	for _, img := range s.Images {
		for _, v := range img.Variants {
			fs := stats[v.Format]
			fs.TotalSize += v.Size
			fs.Count++
			stats[v.Format] = fs
		}
	}
	for name, fs := range stats {
		fs.AvgSize = float64(fs.TotalSize) / float64(fs.Count)
		stats[name] = fs
	}
	s.Formats = stats
}

// FormatNames returns the format names present in the summary, sorted.
func (s *Summary) FormatNames() []string {
	names := make([]string, 0, len(s.Formats))
	for name := range s.Formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteJSON writes the summary as indented JSON to path.
func (s *Summary) WriteJSON(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}
