package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// Tabs is a horizontal selector. Alt+1 through Alt+9 jump to a tab and
// Tab / Shift+Tab cycle through them. Plain digits are left alone so the
// bar can sit next to a numeric input.
type Tabs struct {
	Options  []string
	Selected int
}

// NewTabs creates a tab bar with the given option selected.
func NewTabs(options []string, selected int) Tabs {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Tabs{Options: options, Selected: selected}
}

// Update handles tab switching keys. changed reports whether the
// selection moved.
func (t Tabs) Update(msg tea.Msg) (tabs Tabs, changed bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(t.Options) == 0 {
		return t, false
	}

	prev := t.Selected
	switch key := kmsg.String(); key {
	case "tab":
		t.Selected = (t.Selected + 1) % len(t.Options)
	case "shift+tab":
		t.Selected = (t.Selected + len(t.Options) - 1) % len(t.Options)
	default:
		if d, ok := strings.CutPrefix(key, "alt+"); ok && len(d) == 1 && d[0] >= '1' && d[0] <= '9' {
			if i := int(d[0] - '1'); i < len(t.Options) {
				t.Selected = i
			}
		}
	}
	return t, t.Selected != prev
}

// View renders the tabs on one line.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Options))
	for i, opt := range t.Options {
		label := fmt.Sprintf(" %d %s ", i+1, opt)
		if i == t.Selected {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(label))
		}
	}
	return strings.Join(parts, " ")
}
