package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0Draxy/promotronik/internal/render"
	"github.com/0Draxy/promotronik/internal/state"
)

var (
	listFlags     viewFlags
	flagListTheme string
	flagListWidth int

	exportFlags      viewFlags
	flagExportFormat string
	flagExportOutput string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the listings without starting the UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		sess, err := e.session(cmd.Context(), listFlags)
		if err != nil {
			return err
		}

		theme := e.prefs.Theme()
		if flagListTheme != "" {
			theme = state.ParseTheme(flagListTheme)
		}
		frame, err := sess.Render(render.Terminal{
			Styles:    render.NewStyles(string(theme)),
			Width:     flagListWidth,
			Cursor:    -1,
			Favorites: sess.Features().Favorites,
		}, e.cardOptions())
		if err != nil {
			return fmt.Errorf("rendering listings: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), frame.Output)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the listings as an HTML page or a Markdown digest",
	Long: `Render the listings, narrowed by the same flags as list, to a standalone
HTML page or a Markdown document. Output goes to stdout unless -o is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		target, err := exportTarget(flagExportFormat, e.cfg.Title, e.prefs.Theme(), e.cfg.Features.Favorites)
		if err != nil {
			return err
		}

		sess, err := e.session(cmd.Context(), exportFlags)
		if err != nil {
			return err
		}
		frame, err := sess.Render(target, e.cardOptions())
		if err != nil {
			return fmt.Errorf("rendering export: %w", err)
		}

		if flagExportOutput == "" || flagExportOutput == "-" {
			fmt.Fprint(cmd.OutOrStdout(), frame.Output)
			return nil
		}
		if err := os.WriteFile(flagExportOutput, []byte(frame.Output), 0o644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		e.logger.Debug("export written", "path", flagExportOutput, "cards", len(frame.Cards))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d listing(s) to %s\n", len(frame.Cards), flagExportOutput)
		return nil
	},
}

func exportTarget(format, title string, theme state.Theme, favorites bool) (render.Target, error) {
	switch strings.ToLower(format) {
	case "html":
		return render.HTML{Title: title, Theme: string(theme), Favorites: favorites}, nil
	case "markdown", "md":
		return render.Markdown{Title: title, Favorites: favorites}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (valid: html, markdown)", format)
	}
}

func init() {
	listFlags.register(listCmd)
	listCmd.Flags().StringVar(&flagListTheme, "theme", "", "color theme for this run: dark or light (default: stored theme)")
	listCmd.Flags().IntVar(&flagListWidth, "width", 100, "line width of the cards")

	exportFlags.register(exportCmd)
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "html", "export format: html or markdown")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "file to write (default: stdout)")
}
