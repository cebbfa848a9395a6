package store

import (
	"context"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // keep the newest Limit results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Name   string    // analytics events only: exact event name
}

// AnalyticsEventData captures a single reported analytics event.
type AnalyticsEventData struct {
	SessionID string
	Name      string
	Params    map[string]string
}

// AnalyticsEventRecord is a stored analytics event.
type AnalyticsEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnalyticsEventData
}

// AnswerEventData captures one scored submission.
type AnswerEventData struct {
	SessionID      string
	Mode           string
	QuestionText   string
	ExpectedAnswer string
	LearnerAnswer  string
	Correct        bool
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// Session lifecycle actions.
const (
	SessionActionStart = "start"
	SessionActionEnd   = "end"
)

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID         string
	Action            string // SessionActionStart or SessionActionEnd
	Mode              string
	QuestionsAnswered int
	CorrectAnswers    int
	DurationSecs      int
}

// SessionSummary describes a finished session, built from its end event.
type SessionSummary struct {
	SessionID         string
	Mode              string
	EndedAt           time.Time
	QuestionsAnswered int
	CorrectAnswers    int
	DurationSecs      int
}

// ModeStats aggregates answer events for one mode.
type ModeStats struct {
	Mode     string `sql:"mode"`
	Answered int    `sql:"answered"`
	Correct  int    `sql:"correct"`
}

// Wrong returns the number of wrong answers.
func (m ModeStats) Wrong() int {
	return m.Answered - m.Correct
}

// Accuracy returns the fraction of correct answers, or 0 with no answers.
func (m ModeStats) Accuracy() float64 {
	if m.Answered == 0 {
		return 0
	}
	return float64(m.Correct) / float64(m.Answered)
}

// EventRepo provides append and query access to drill events.
type EventRepo interface {
	// AppendAnalyticsEvent records an event reported by the analytics collaborator.
	AppendAnalyticsEvent(ctx context.Context, data AnalyticsEventData) error

	// AppendAnswerEvent records one scored submission.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QueryAnalyticsEvents returns the newest opts.Limit matching analytics
	// events in sequence order.
	QueryAnalyticsEvents(ctx context.Context, opts QueryOpts) ([]AnalyticsEventRecord, error)

	// QueryAnswerEvents returns the newest opts.Limit matching answer events
	// in sequence order.
	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error)

	// RecentSessions returns up to limit finished sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// AnswerStatsByMode aggregates answer events per mode, ordered by mode name.
	AnswerStatsByMode(ctx context.Context) ([]ModeStats, error)
}

// eventRepo implements EventRepo on top of the ent SQL driver.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}
