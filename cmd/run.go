package cmd

import (
	"fmt"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	mode, _, err := resolveMode(cmd)
	if err != nil {
		return err
	}

	cfg, err := problemgen.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.close()

	return app.Run(app.Options{
		Generator: problemgen.New(nil, cfg),
		Reporter:  d.reporter,
		EventRepo: d.repo,
		Mode:      mode,
	})
}
