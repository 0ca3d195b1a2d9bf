package components

import (
	"fmt"
	"strings"

	"github.com/platewatch/platewatch/internal/tui/themes"
	"github.com/platewatch/platewatch/internal/tui/viewmodel"
)

// renderPagination renders the windowed page controls. Single-page views
// render nothing.
func renderPagination(theme themes.Theme, current, totalPages int) string {
	window := viewmodel.PageWindow(current, totalPages)
	if len(window) == 0 {
		return ""
	}

	parts := []string{theme.PageInactive.Render("« prev")}
	for _, item := range window {
		switch {
		case item.Ellipsis:
			parts = append(parts, theme.Muted.Render("…"))
		case item.Active:
			parts = append(parts, theme.PageActive.Render(fmt.Sprintf("%d", item.Number)))
		default:
			parts = append(parts, theme.PageInactive.Render(fmt.Sprintf("%d", item.Number)))
		}
	}
	parts = append(parts, theme.PageInactive.Render("next »"))

	return strings.Join(parts, " ")
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
