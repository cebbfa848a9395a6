package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/abhisek/mathdrill/internal/store"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recorded analytics events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		name, _ := cmd.Flags().GetString("name")
		answers, _ := cmd.Flags().GetBool("answers")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		repo := s.EventRepo()
		out := cmd.OutOrStdout()

		if answers {
			events, err := repo.QueryAnswerEvents(ctx, store.QueryOpts{Limit: limit})
			if err != nil {
				return fmt.Errorf("query answer events: %w", err)
			}
			printAnswerEvents(out, events)
			return nil
		}

		events, err := repo.QueryAnalyticsEvents(ctx, store.QueryOpts{Limit: limit, Name: name})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		printAnalyticsEvents(out, events)
		return nil
	},
}

func init() {
	eventsCmd.Flags().Int("limit", 50, "Show only the most recent N events (0 = all)")
	eventsCmd.Flags().String("name", "", "Only show events with this name, e.g. select_math_mode")
	eventsCmd.Flags().Bool("answers", false, "List answer events instead")
}

func printAnalyticsEvents(out io.Writer, events []store.AnalyticsEventRecord) {
	if len(events) == 0 {
		fmt.Fprintln(out, "No events found.")
		return
	}

	// Header.
	fmt.Fprintf(out, "%-6s  %-19s  %-18s  %-8s  %s\n",
		"Seq", "Timestamp", "Name", "Session", "Params")
	fmt.Fprintln(out, strings.Repeat("─", 80))

	for _, e := range events {
		fmt.Fprintf(out, "%-6d  %-19s  %-18s  %-8s  %s\n",
			e.Sequence,
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Name,
			shortID(e.SessionID),
			formatParams(e.Params),
		)
	}
}

func printAnswerEvents(out io.Writer, events []store.AnswerEventRecord) {
	if len(events) == 0 {
		fmt.Fprintln(out, "No answers found.")
		return
	}

	fmt.Fprintf(out, "%-6s  %-19s  %-14s  %-18s  %-8s  %-8s  %s\n",
		"Seq", "Timestamp", "Mode", "Question", "Expected", "Answer", "OK")
	fmt.Fprintln(out, strings.Repeat("─", 94))

	for _, e := range events {
		ok := "✓"
		if !e.Correct {
			ok = "✗"
		}
		fmt.Fprintf(out, "%-6d  %-19s  %-14s  %-18s  %-8s  %-8s  %s\n",
			e.Sequence,
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Mode,
			e.QuestionText,
			e.ExpectedAnswer,
			e.LearnerAnswer,
			ok,
		)
	}
}

// formatParams renders params as sorted key=value pairs.
func formatParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + params[k]
	}
	return strings.Join(parts, " ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
