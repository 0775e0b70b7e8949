package compare

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/imghex/internal/ui/pretty"
)

const minTableWidth = 60

// RenderText writes the human-readable comparison report. Width is the
// available terminal width; values below minTableWidth are clamped up.
func RenderText(w io.Writer, s *Summary, styles *pretty.Styles, width int) {
	if width < minTableWidth {
		width = minTableWidth
	}
	rule := strings.Repeat("-", width)

	for i := range s.Images {
		img := &s.Images[i]
		fmt.Fprintf(w, "%s\n", styles.Header.Render(
			fmt.Sprintf("%s (%dx%d px)", img.Name, img.Width, img.Height)))
		fmt.Fprintf(w, "%-8s %-12s %12s  %-24s %s\n",
			"format", "variant", "size", "description", "ratio")
		fmt.Fprintln(w, rule)

		smallest := img.Smallest().Size
		for _, v := range img.Variants {
			ratio := 1.0
			if smallest > 0 {
				ratio = float64(v.Size) / float64(smallest)
			}
			fmt.Fprintf(w, "%-8s %-12s %12d  %-24s %.2fx\n",
				v.Format, v.Name, v.Size, v.Description, ratio)
		}

		best := img.Smallest()
		fmt.Fprintf(w, "%s %s/%s (%d bytes)\n",
			styles.Success.Render("best compression:"), best.Format, best.Name, best.Size)
		if jpeg, ok := img.BestJPEG(); ok {
			fmt.Fprintf(w, "best quality JPEG: %s (%d bytes)\n", jpeg.Name, jpeg.Size)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s\n", styles.Header.Render("format statistics"))
	fmt.Fprintf(w, "%-8s %14s %8s\n", "format", "avg size", "count")
	fmt.Fprintln(w, rule[:min(len(rule), 34)])
	for _, name := range s.FormatNames() {
		stats := s.Formats[name]
		fmt.Fprintf(w, "%-8s %14.0f %8d\n", name, stats.AvgSize, stats.Count)
	}
}
