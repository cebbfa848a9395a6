package session

import "github.com/abhisek/mathdrill/internal/problemgen"

// ModeProgress tracks results for one mode within a session.
type ModeProgress struct {
	Mode      problemgen.Mode
	Attempted int
	Correct   int
	Accuracy  float64 // Correct / Attempted (computed)
}

// Record adds a new answer result to the progress.
func (mp *ModeProgress) Record(correct bool) {
	mp.Attempted++
	if correct {
		mp.Correct++
	}
	if mp.Attempted > 0 {
		mp.Accuracy = float64(mp.Correct) / float64(mp.Attempted)
	}
}

// progressFor returns the progress entry for mode, creating it on first use.
func (s *State) progressFor(mode problemgen.Mode) *ModeProgress {
	mp := s.PerMode[mode]
	if mp == nil {
		mp = &ModeProgress{Mode: mode}
		s.PerMode[mode] = mp
	}
	return mp
}
