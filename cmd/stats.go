package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer statistics per mode and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, _ := cmd.Flags().GetInt("sessions")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		return printStats(cmd.Context(), cmd.OutOrStdout(), s.EventRepo(), sessions)
	},
}

func init() {
	statsCmd.Flags().Int("sessions", 10, "Number of recent sessions to list")
}

func printStats(ctx context.Context, out io.Writer, repo store.EventRepo, sessionLimit int) error {
	modes, err := repo.AnswerStatsByMode(ctx)
	if err != nil {
		return fmt.Errorf("query stats: %w", err)
	}
	if len(modes) == 0 {
		fmt.Fprintln(out, "No answers recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "%-20s  %8s  %7s  %5s  %8s\n", "Mode", "Answered", "Correct", "Wrong", "Accuracy")
	fmt.Fprintln(out, strings.Repeat("─", 56))

	var total store.ModeStats
	for _, m := range modes {
		fmt.Fprintf(out, "%-20s  %8d  %7d  %5d  %7.0f%%\n",
			modeDisplayName(m.Mode), m.Answered, m.Correct, m.Wrong(), m.Accuracy()*100)
		total.Answered += m.Answered
		total.Correct += m.Correct
	}
	fmt.Fprintln(out, strings.Repeat("─", 56))
	fmt.Fprintf(out, "%-20s  %8d  %7d  %5d  %7.0f%%\n",
		"Total", total.Answered, total.Correct, total.Wrong(), total.Accuracy()*100)

	if sessionLimit <= 0 {
		return nil
	}
	recent, err := repo.RecentSessions(ctx, sessionLimit)
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}
	if len(recent) == 0 {
		return nil
	}

	fmt.Fprintf(out, "\n%-19s  %-20s  %9s  %7s  %8s\n", "Ended", "Last mode", "Questions", "Correct", "Duration")
	fmt.Fprintln(out, strings.Repeat("─", 71))
	for _, s := range recent {
		fmt.Fprintf(out, "%-19s  %-20s  %9d  %7d  %5d:%02d\n",
			s.EndedAt.Local().Format("2006-01-02 15:04:05"),
			modeDisplayName(s.Mode),
			s.QuestionsAnswered,
			s.CorrectAnswers,
			s.DurationSecs/60, s.DurationSecs%60,
		)
	}
	return nil
}

func modeDisplayName(s string) string {
	m, err := problemgen.ParseMode(s)
	if err != nil {
		return s
	}
	return m.DisplayName()
}
