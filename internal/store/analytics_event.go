package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendAnalyticsEvent(ctx context.Context, data AnalyticsEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	params := data.Params
	if params == nil {
		params = map[string]string{}
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}

	query, args := builder().Insert(analyticsEventsTable).
		Columns("sequence", "timestamp", "session_id", "name", "params").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Name, string(raw)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save analytics event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnalyticsEvents(ctx context.Context, opts QueryOpts) ([]AnalyticsEventRecord, error) {
	sel := builder().Select("sequence", "timestamp", "session_id", "name", "params").
		From(builder().Table(analyticsEventsTable))
	if opts.Name != "" {
		sel.Where(entsql.EQ("name", opts.Name))
	}
	applyOpts(sel, opts)

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query analytics events: %w", err)
	}
	defer rows.Close()

	var out []AnalyticsEventRecord
	for rows.Next() {
		var (
			rec    AnalyticsEventRecord
			params string
		)
		if err := rows.Scan(&rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.Name, &params); err != nil {
			return nil, fmt.Errorf("scan analytics event: %w", err)
		}
		if err := json.Unmarshal([]byte(params), &rec.Params); err != nil {
			return nil, fmt.Errorf("decode params for event %d: %w", rec.Sequence, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query analytics events: %w", err)
	}
	slices.Reverse(out)
	return out, nil
}
