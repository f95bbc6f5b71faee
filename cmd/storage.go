package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0Draxy/promotronik/internal/hosts"
	"github.com/0Draxy/promotronik/internal/state"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List the stored favorite links",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		favs := e.prefs.Favorites()
		if len(favs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")
			return nil
		}
		for _, link := range favs {
			fmt.Fprintln(cmd.OutOrStdout(), link)
		}
		return nil
	},
}

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the stored color theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(state.ThemeDark), string(state.ThemeLight)},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		if len(args) == 1 {
			if err := e.prefs.SetTheme(state.Theme(args[0])); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), e.prefs.Theme())
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset and favorites statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		items := e.load(cmd.Context())
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Dataset: %s\n", e.cfg.Dataset.Source)
		fmt.Fprintf(out, "Listings: %d\n", len(items))
		if !flagEphemeral {
			fmt.Fprintf(out, "State: %s\n", e.cfg.ResolvedStatePath())
		}
		fmt.Fprintf(out, "Favorites: %d\n", len(e.prefs.Favorites()))
		fmt.Fprintf(out, "Theme: %s\n", e.prefs.Theme())

		// the first chip is "All"
		if chips := hosts.Chips(items, e.cfg.ChipLimit())[1:]; len(chips) > 0 {
			fmt.Fprintln(out, "Top hosts:")
			for _, c := range chips {
				fmt.Fprintf(out, "  %-30s %d\n", c.Host, c.Count)
			}
		}
		return nil
	},
}
