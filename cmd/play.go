package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/mathdrill/internal/analytics"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/spf13/cobra"
)

// playDelay is the pause between an answer and the next question.
var playDelay = session.FeedbackDelay

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drill line by line, without the full-screen UI",
	Long: `Ask questions one at a time on stdin/stdout.

Type an answer and press Enter. Commands:
  :mode <name>   switch to multiplication, division, order or fractions
  :quit          stop and print a summary`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Uint64("seed", 0, "Seed for a repeatable question sequence (0 = random)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	mode, ok, err := resolveMode(cmd)
	if err != nil {
		return err
	}
	if !ok {
		mode = problemgen.ModeMultiplication
	}

	cfg, err := problemgen.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var src problemgen.Source
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		src = rand.New(rand.NewPCG(seed, seed))
	}

	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.close()

	return playLoop(cmd.InOrStdin(), cmd.OutOrStdout(), problemgen.New(src, cfg), d.reporter, mode)
}

// playLoop runs a drill session over line-oriented input until :quit or
// end of input, then prints a summary.
func playLoop(in io.Reader, out io.Writer, gen problemgen.Generator, reporter analytics.Reporter, mode problemgen.Mode) error {
	state, err := session.New(gen, reporter, mode)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "Mode: %s. Type :mode <name> to switch, :quit to stop.\n", state.Mode.DisplayName())

	for {
		fmt.Fprintf(out, "\n%s = ", state.Current.Text)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())

		if line == ":quit" || line == ":q" {
			break
		}
		if name, found := strings.CutPrefix(line, ":mode"); found {
			switchMode(out, state, name)
			continue
		}

		res, err := state.Submit(line)
		if err != nil {
			return err
		}
		if !res.Accepted {
			fmt.Fprintln(out, answerHint(state.Mode))
			continue
		}

		if res.Correct {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Not quite.\033[0m Should be %s\n", res.Entry.Expected)
		}
		fmt.Fprintf(out, "Score: ✅ %d  ❌ %d\n", state.Score.Correct, state.Score.Wrong)

		time.Sleep(playDelay)
		if err := state.Next(); err != nil {
			return err
		}
	}

	printSessionSummary(out, state.End(), state.History)
	return nil
}

func switchMode(out io.Writer, state *session.State, name string) {
	mode, err := problemgen.ParseMode(name)
	if err != nil {
		fmt.Fprintf(out, "Unknown mode %q. Try multiplication, division, order or fractions.\n", strings.TrimSpace(name))
		return
	}
	if err := state.SwitchMode(mode); err != nil {
		fmt.Fprintf(out, "Could not switch: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Mode: %s\n", mode.DisplayName())
}

func answerHint(mode problemgen.Mode) string {
	if mode == problemgen.ModeFractions {
		return "Type your answer like 3/4."
	}
	return "Type a number."
}

func printSessionSummary(out io.Writer, sum *session.Summary, history []session.HistoryEntry) {
	if sum.Answered == 0 {
		fmt.Fprintln(out, "No questions answered. See you next time!")
		return
	}

	fmt.Fprintln(out, "── History ──")
	for _, e := range history {
		fmt.Fprintln(out, e.String())
	}

	fmt.Fprintf(out, "── Summary: %d/%d correct (%.0f%%) in %s ──\n",
		sum.Correct, sum.Answered, sum.Accuracy*100, sum.Duration.Round(time.Second))
	for _, mr := range sum.ModeResults {
		fmt.Fprintf(out, "  %-20s %d/%d\n", mr.Mode.DisplayName(), mr.Correct, mr.Attempted)
	}
}
