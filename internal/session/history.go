package session

import (
	"fmt"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// HistoryEntry records one scored answer.
type HistoryEntry struct {
	Mode         problemgen.Mode
	QuestionText string
	UserAnswer   string
	Expected     string
	Correct      bool
}

// String renders the entry as it appears in the history list, e.g.
// "7 × 8 = 56 ✅" or "36 ÷ 4 = 8 ❌ (Should be 9)".
func (e HistoryEntry) String() string {
	if e.Correct {
		return fmt.Sprintf("%s = %s ✅", e.QuestionText, e.UserAnswer)
	}
	return fmt.Sprintf("%s = %s ❌ (Should be %s)", e.QuestionText, e.UserAnswer, e.Expected)
}

// Outcome is the result of a Submit call.
type Outcome struct {
	// Accepted is false when the input was rejected as malformed. Nothing
	// was scored or recorded in that case.
	Accepted bool

	Correct bool

	// Entry is the history entry that was added. Zero when not accepted.
	Entry HistoryEntry
}
