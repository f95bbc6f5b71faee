package cmd

import (
	"github.com/spf13/cobra"

	"github.com/0Draxy/promotronik/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	// The UI owns the terminal, so logs only ever go to the debug file.
	e, err := newEnv(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	return tui.Run(tui.RunOpts{
		Title:    e.cfg.Title,
		Loader:   e.loader(),
		Engine:   e.engine(),
		Prefs:    e.prefs,
		Features: e.features(),
		Cards:    e.cardOptions(),
		Logger:   e.logger,
	})
}
