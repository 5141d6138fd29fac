package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_RightAlign(t *testing.T) {
	out := RenderTable([]string{"DAY", "MIN"}, [][]string{{"Monday", "5"}, {"Sun", "125"}}, 1)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[2], "  5"), "numeric column should be right aligned: %q", lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "125"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
