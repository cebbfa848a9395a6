package drill

import sess "github.com/abhisek/mathdrill/internal/session"

// sessionInitMsg is sent when the session and its first question are ready.
type sessionInitMsg struct {
	State *sess.State
	Err   error
}

// feedbackDoneMsg is sent when the feedback display period ends.
type feedbackDoneMsg struct{}

// shakeDoneMsg ends the malformed-input cue started by the shake with the
// same id. Older ids are ignored.
type shakeDoneMsg struct {
	id int
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
