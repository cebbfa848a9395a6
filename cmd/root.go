package cmd

import (
	"fmt"

	"github.com/abhisek/mathdrill/internal/analytics"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathdrill",
	Short: "Arithmetic drills for kids, in the terminal",
	Long: `Mathdrill asks multiplication, division, order-of-operations and
fraction questions, checks your answers and keeps score.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHDRILL_DB env var)")
	rootCmd.PersistentFlags().Bool("no-analytics", false, "Do not record events")
	rootCmd.PersistentFlags().String("mode", "", "Start mode: multiplication, division, order or fractions")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveMode parses --mode. ok is false when the flag is unset.
func resolveMode(cmd *cobra.Command) (mode problemgen.Mode, ok bool, err error) {
	v, _ := cmd.Flags().GetString("mode")
	if v == "" {
		return "", false, nil
	}
	mode, err = problemgen.ParseMode(v)
	if err != nil {
		return "", false, err
	}
	return mode, true, nil
}

// deps holds the event store and reporter a drill writes to.
type deps struct {
	store    *store.Store
	repo     store.EventRepo // nil with --no-analytics
	reporter analytics.Reporter
}

// openDeps opens the event store unless --no-analytics is set. The caller
// must call close.
func openDeps(cmd *cobra.Command) (*deps, error) {
	if off, _ := cmd.Flags().GetBool("no-analytics"); off {
		return &deps{reporter: analytics.Nop{}}, nil
	}

	st, err := openStore(cmd)
	if err != nil {
		return nil, err
	}
	repo := st.EventRepo()
	return &deps{
		store:    st,
		repo:     repo,
		reporter: analytics.NewStoreReporter(repo).WithWarnings(cmd.ErrOrStderr()),
	}, nil
}

func (d *deps) close() error {
	if d.store == nil {
		return nil
	}
	return d.store.Close()
}

// openStore opens the database named by --db or its fallbacks.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}
