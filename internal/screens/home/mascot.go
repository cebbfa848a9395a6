package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// MascotVariant is the mood the home mascot shows.
type MascotVariant int

const (
	MascotIdle MascotVariant = iota
	MascotCelebrating
	MascotEncouraging
	MascotAlert
)

// Lifetime accuracy bands for the mascot's mood. Both need at least
// moodMinAnswers answers on record.
const (
	moodMinAnswers    = 20
	celebrateAccuracy = 0.9
	encourageAccuracy = 0.5
)

var mascots = map[MascotVariant]struct {
	art string
	fg  color.Color
}{
	MascotIdle: {fg: theme.Primary, art: `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ±×÷ │
└─────┘`},
	MascotCelebrating: {fg: theme.ArcadeYellow, art: `┌─────┐
│ ★ ★ │
│  ▿  │
│ ±×÷ │
└─╥═╥─┘
  ╚═╝`},
	MascotEncouraging: {fg: theme.ArcadeCyan, art: `┌─────┐
│ ◠ ◠ │
│  ‿  │ keep going!
│ ±×÷ │
└─────┘`},
	MascotAlert: {fg: theme.Accent, art: `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ±×÷ │
└─────┘`},
}

// mascotFor picks the mascot mood for the given lifetime stats.
func mascotFor(ls lifetimeStats) MascotVariant {
	if ls.Answered < moodMinAnswers {
		return MascotIdle
	}
	acc := float64(ls.Correct) / float64(ls.Answered)
	switch {
	case acc >= celebrateAccuracy:
		return MascotCelebrating
	case acc < encourageAccuracy:
		return MascotEncouraging
	}
	return MascotIdle
}

// RenderMascot returns the mascot art for v. Unknown variants render idle.
func RenderMascot(v MascotVariant) string {
	m, ok := mascots[v]
	if !ok {
		m = mascots[MascotIdle]
	}
	return lipgloss.NewStyle().Foreground(m.fg).Render(m.art)
}
