package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_Heading_ProducesHTML(t *testing.T) {
	out, err := Render("# Button\n\nA **clickable** element.")
	require.NoError(t, err)
	require.Contains(t, out, "<h1")
	require.Contains(t, out, "<strong>clickable</strong>")
}

func TestRender_GFMTable_Rendered(t *testing.T) {
	out, err := Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	require.Contains(t, out, "<table>")
}
