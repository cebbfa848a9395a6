package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ █████╗ ████████╗██╗  ██╗██████╗ ██████╗ ██╗██╗     ██╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║██╔══██╗██╔══██╗██║██║     ██║
 ██╔████╔██║███████║   ██║   ███████║██║  ██║██████╔╝██║██║     ██║
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║██║  ██║██╔══██╗██║██║     ██║
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║██████╔╝██║  ██║██║███████╗███████╗
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚══════╝`

const bannerCompact = "M A T H D R I L L"

// bannerMinWidth is the narrowest width that fits bannerArt.
const bannerMinWidth = 74

// RenderBanner returns the MATHDRILL banner styled in the primary color.
// Uses a compact fallback for terminals narrower than bannerMinWidth.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
