package session

import (
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// Summary holds the data displayed when a session ends.
type Summary struct {
	Duration    time.Duration
	Answered    int
	Correct     int
	Accuracy    float64
	ModeResults []ModeProgress
}

// BuildSummary creates a Summary from the current session state. Mode
// results follow menu order and skip modes with no answers.
func BuildSummary(state *State) *Summary {
	var results []ModeProgress
	for _, m := range problemgen.Modes {
		if mp, ok := state.PerMode[m]; ok && mp.Attempted > 0 {
			results = append(results, *mp)
		}
	}

	var accuracy float64
	if total := state.Score.Total(); total > 0 {
		accuracy = float64(state.Score.Correct) / float64(total)
	}

	end := state.EndTime
	if end.IsZero() {
		end = state.now()
	}

	return &Summary{
		Duration:    end.Sub(state.StartTime),
		Answered:    state.Score.Total(),
		Correct:     state.Score.Correct,
		Accuracy:    accuracy,
		ModeResults: results,
	}
}
