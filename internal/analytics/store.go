package analytics

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/abhisek/mathdrill/internal/store"
)

// StoreReporter writes events to the local event store. Answer and
// session events go to their own tables; everything else is kept as a
// generic analytics event.
type StoreReporter struct {
	repo store.EventRepo
	warn io.Writer
}

// NewStoreReporter creates a Reporter backed by repo. Write failures are
// printed to stderr.
func NewStoreReporter(repo store.EventRepo) *StoreReporter {
	return &StoreReporter{repo: repo, warn: os.Stderr}
}

// WithWarnings redirects write-failure warnings to w.
func (r *StoreReporter) WithWarnings(w io.Writer) *StoreReporter {
	r.warn = w
	return r
}

// Report stores ev. Errors are logged, not returned.
func (r *StoreReporter) Report(ctx context.Context, ev Event) {
	if err := r.write(ctx, ev); err != nil {
		fmt.Fprintf(r.warn, "warning: failed to record %s event: %v\n", ev.Name, err)
	}
}

func (r *StoreReporter) write(ctx context.Context, ev Event) error {
	switch ev.Name {
	case EventAnswer:
		correct, err := strconv.ParseBool(ev.Param(ParamCorrect))
		if err != nil {
			return fmt.Errorf("param %s: %w", ParamCorrect, err)
		}
		return r.repo.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:      ev.SessionID,
			Mode:           ev.Param(ParamMathMode),
			QuestionText:   ev.Param(ParamQuestion),
			ExpectedAnswer: ev.Param(ParamExpected),
			LearnerAnswer:  ev.Param(ParamAnswer),
			Correct:        correct,
		})

	case EventSessionStart:
		return r.repo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: ev.SessionID,
			Action:    store.SessionActionStart,
			Mode:      ev.Param(ParamMathMode),
		})

	case EventSessionEnd:
		data := store.SessionEventData{
			SessionID: ev.SessionID,
			Action:    store.SessionActionEnd,
			Mode:      ev.Param(ParamMathMode),
		}
		for key, dst := range map[string]*int{
			ParamQuestionsAnswered: &data.QuestionsAnswered,
			ParamCorrectAnswers:    &data.CorrectAnswers,
			ParamDurationSecs:      &data.DurationSecs,
		} {
			n, err := ev.IntParam(key)
			if err != nil {
				return fmt.Errorf("param %s: %w", key, err)
			}
			*dst = n
		}
		return r.repo.AppendSessionEvent(ctx, data)

	default:
		return r.repo.AppendAnalyticsEvent(ctx, store.AnalyticsEventData{
			SessionID: ev.SessionID,
			Name:      ev.Name,
			Params:    ev.Params,
		})
	}
}
