package components

import (
	"slices"

	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry of a Menu. Any of its Hotkeys selects and
// activates it directly.
type MenuItem struct {
	Label   string
	Hotkeys []string
	Action  func() tea.Cmd
}

// Menu tracks the selected entry of a vertical menu. Rendering is left to
// the owning screen.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves the selection with up/down (wrapping at the ends) and
// activates items on enter or a hotkey.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	n := len(m.Items)
	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected = (m.Selected - 1 + n) % n
	case "down", "j":
		m.Selected = (m.Selected + 1) % n
	case "enter":
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if slices.Contains(item.Hotkeys, key) {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}
