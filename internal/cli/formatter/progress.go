package formatter

import "strings"

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a horizontal bar of width cells filled to value/max.
// A non-zero value always shows at least one filled cell.
func RenderBar(value, max, width int) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if max > 0 && value > 0 {
		filled = value * width / max
		if filled == 0 {
			filled = 1
		}
	}
	if filled > width {
		filled = width
	}
	return StyleGreen.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}
