// Package analytics reports drill events to an opaque sink.
//
// Reporting is fire-and-forget: a Reporter never returns an error and
// never blocks the learner on a failed write.
package analytics

import (
	"context"
	"strconv"
)

// Event names.
const (
	EventSelectMode   = "select_math_mode"
	EventAnswer       = "answer_submitted"
	EventSessionStart = "session_start"
	EventSessionEnd   = "session_end"
)

// Event parameter keys.
const (
	ParamMathMode          = "math_mode"
	ParamQuestion          = "question"
	ParamExpected          = "expected"
	ParamAnswer            = "answer"
	ParamCorrect           = "correct"
	ParamQuestionsAnswered = "questions_answered"
	ParamCorrectAnswers    = "correct_answers"
	ParamDurationSecs      = "duration_secs"
)

// Event is a named occurrence with string parameters.
type Event struct {
	Name      string
	SessionID string
	Params    map[string]string
}

// Param returns the named parameter, or "" if absent.
func (e Event) Param(key string) string {
	return e.Params[key]
}

// IntParam returns the named parameter parsed as an integer.
func (e Event) IntParam(key string) (int, error) {
	return strconv.Atoi(e.Params[key])
}

// Reporter receives drill events.
type Reporter interface {
	Report(ctx context.Context, ev Event)
}

// Nop is a Reporter that discards every event.
type Nop struct{}

// Report does nothing.
func (Nop) Report(context.Context, Event) {}

// SelectMode builds the event sent when the learner switches mode.
func SelectMode(sessionID, mode string) Event {
	return Event{
		Name:      EventSelectMode,
		SessionID: sessionID,
		Params:    map[string]string{ParamMathMode: mode},
	}
}

// Answer builds the event sent for every scored submission.
func Answer(sessionID, mode, question, expected, answer string, correct bool) Event {
	return Event{
		Name:      EventAnswer,
		SessionID: sessionID,
		Params: map[string]string{
			ParamMathMode: mode,
			ParamQuestion: question,
			ParamExpected: expected,
			ParamAnswer:   answer,
			ParamCorrect:  strconv.FormatBool(correct),
		},
	}
}

// SessionStart builds the event sent when a drill session begins.
func SessionStart(sessionID, mode string) Event {
	return Event{
		Name:      EventSessionStart,
		SessionID: sessionID,
		Params:    map[string]string{ParamMathMode: mode},
	}
}

// SessionEnd builds the event sent when a drill session ends.
func SessionEnd(sessionID, mode string, answered, correct, durationSecs int) Event {
	return Event{
		Name:      EventSessionEnd,
		SessionID: sessionID,
		Params: map[string]string{
			ParamMathMode:          mode,
			ParamQuestionsAnswered: strconv.Itoa(answered),
			ParamCorrectAnswers:    strconv.Itoa(correct),
			ParamDurationSecs:      strconv.Itoa(durationSecs),
		},
	}
}
