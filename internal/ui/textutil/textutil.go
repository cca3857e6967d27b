// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the width of a string that may carry ANSI codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in "…" when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= VisualWidth(TruncateEllipsis) {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRightVisual pads or truncates s to exactly targetWidth columns.
func PadRightVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}

// PadLeftVisual right-aligns s in targetWidth columns, truncating if needed.
func PadLeftVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillLeft(s, targetWidth)
}

// Row lays cells out in fixed-width columns separated by two spaces. Cells may
// carry ANSI styling. Cells beyond len(widths) are appended unpadded.
func Row(widths []int, cells ...string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		switch {
		case i >= len(widths):
			parts[i] = c
		case VisualWidthStyled(c) > widths[i]:
			parts[i] = Truncate(c, widths[i])
		case i < len(cells)-1:
			parts[i] = c + strings.Repeat(" ", widths[i]-VisualWidthStyled(c))
		default:
			parts[i] = c
		}
	}
	return strings.Join(parts, "  ")
}

// Money formats whole dollars compactly: $950, $12.5K, $2.4M.
func Money(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%s$%.1fM", sign, float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%s$%.1fK", sign, float64(n)/1_000)
	default:
		return fmt.Sprintf("%s$%d", sign, n)
	}
}

// Bar draws a horizontal bar of width cells for pct in [0,100].
func Bar(pct, width int) string {
	if width <= 0 {
		return ""
	}
	pct = max(0, min(pct, 100))
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
