package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/imghex/internal/ui/pretty"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	t.Run("color styles render content", func(t *testing.T) {
		t.Parallel()

		styles := pretty.NewStyles(true)
		assert.NotNil(t, styles)
		assert.Contains(t, styles.FilePath.Render("file.png"), "file.png")
	})

	t.Run("no-color styles are plain", func(t *testing.T) {
		t.Parallel()

		styles := pretty.NewStyles(false)
		assert.Equal(t, "IHDR", styles.FactLabel.Render("IHDR"))
		assert.Equal(t, "0008", styles.Offset.Render("0008"))
	})
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", &buf))

	// Auto mode with a non-TTY writer disables color.
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
	assert.False(t, pretty.IsColorEnabled("", &buf))
}
