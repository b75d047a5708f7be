package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-explorer/internal/banner"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("240")).
			Align(lipgloss.Center)

	bannerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	bannerLinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)
)

// renderBanner draws a promo across the bottom of the screen.
func renderBanner(ad banner.Ad, width int) string {
	line := bannerTitleStyle.Render(ad.Title) + "  " + ad.Text
	if ad.Link != "" {
		line += "  " + bannerLinkStyle.Render(ad.Link)
	}
	style := bannerStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(line)
}
