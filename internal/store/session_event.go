package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(sessionEventsTable).
		Columns("sequence", "timestamp", "session_id", "action", "mode",
			"questions_answered", "correct_answers", "duration_secs").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Action, data.Mode,
			data.QuestionsAnswered, data.CorrectAnswers, data.DurationSecs).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(answerEventsTable).
		Columns("sequence", "timestamp", "session_id", "mode",
			"question_text", "expected_answer", "learner_answer", "correct").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Mode,
			data.QuestionText, data.ExpectedAnswer, data.LearnerAnswer, data.Correct).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error) {
	sel := builder().Select("sequence", "timestamp", "session_id", "mode",
		"question_text", "expected_answer", "learner_answer", "correct").
		From(builder().Table(answerEventsTable))
	applyOpts(sel, opts)

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEventRecord
	for rows.Next() {
		var rec AnswerEventRecord
		if err := rows.Scan(&rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.Mode,
			&rec.QuestionText, &rec.ExpectedAnswer, &rec.LearnerAnswer, &rec.Correct); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	slices.Reverse(out)
	return out, nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	sel := builder().Select("session_id", "mode", "timestamp",
		"questions_answered", "correct_answers", "duration_secs").
		From(builder().Table(sessionEventsTable)).
		Where(entsql.EQ("action", SessionActionEnd)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.SessionID, &s.Mode, &s.EndedAt,
			&s.QuestionsAnswered, &s.CorrectAnswers, &s.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return out, nil
}

func (r *eventRepo) AnswerStatsByMode(ctx context.Context) ([]ModeStats, error) {
	query, args := builder().Select(
		"mode",
		entsql.As(entsql.Count("*"), "answered"),
		entsql.As(entsql.Sum("correct"), "correct"),
	).
		From(builder().Table(answerEventsTable)).
		GroupBy("mode").
		OrderBy("mode").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query answer stats: %w", err)
	}
	defer rows.Close()

	var stats []ModeStats
	if err := entsql.ScanSlice(&rows, &stats); err != nil {
		return nil, fmt.Errorf("scan answer stats: %w", err)
	}
	return stats, nil
}

// applyOpts adds the QueryOpts filters to sel, newest first, so Limit keeps
// the most recent matches. Callers reverse the rows back to sequence order.
func applyOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}
