package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/0Draxy/promotronik/internal/config"
	"github.com/0Draxy/promotronik/internal/dataset"
	"github.com/0Draxy/promotronik/internal/listing"
	"github.com/0Draxy/promotronik/internal/logging"
	"github.com/0Draxy/promotronik/internal/render"
	"github.com/0Draxy/promotronik/internal/session"
	"github.com/0Draxy/promotronik/internal/state"
	"github.com/0Draxy/promotronik/internal/view"
)

// env is what every command builds from the config file and global flags.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   state.Store
	prefs   *state.Prefs
	closers []func() error
}

// newEnv loads the config, opens the preference store, and sets up logging.
// logTo receives log records; nil sends them to the debug file when --debug
// is set and drops them otherwise.
func newEnv(logTo io.Writer) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	e := &env{cfg: cfg}

	switch {
	case logTo != nil:
		e.logger = logging.New(logTo, flagDebug)
	case flagDebug:
		logger, closeLog, err := logging.OpenFile(config.DebugLogPath())
		if err != nil {
			return nil, err
		}
		e.logger = logger
		e.closers = append(e.closers, closeLog)
	default:
		e.logger = logging.Discard()
	}

	if flagEphemeral {
		e.store = state.NewMemoryStore()
	} else {
		db, err := state.Open(cfg.ResolvedStatePath())
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("opening state: %w", err)
		}
		e.store = db
		e.closers = append(e.closers, db.Close)
	}

	e.prefs, err = state.LoadPrefs(e.store)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.logger.Debug("environment ready", "config", cfg.Path(), "ephemeral", flagEphemeral)
	return e, nil
}

// Close releases the store and log file, newest first.
func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i]())
	}
	e.closers = nil
	return errors.Join(errs...)
}

func (e *env) loader() *dataset.Loader {
	return &dataset.Loader{
		Source:  e.cfg.Dataset.Source,
		BaseDir: e.cfg.BaseDir(),
		Format:  dataset.Format(e.cfg.DatasetFormat()),
		Client:  &http.Client{},
		Logger:  e.logger,
	}
}

func (e *env) engine() *view.Engine {
	return view.NewEngine(e.cfg.Locale, view.WithPriceSort(e.cfg.Features.PriceSort))
}

func (e *env) features() session.Features {
	return session.Features{
		Favorites: e.cfg.Features.Favorites,
		PriceSort: e.cfg.Features.PriceSort,
		Chips:     e.cfg.Features.Chips,
		ChipLimit: e.cfg.ChipLimit(),
	}
}

func (e *env) cardOptions() render.Options {
	return render.Options{FaviconURL: e.cfg.FaviconURL, CTALabel: e.cfg.CTALabel}
}

// load fetches the dataset once. A stalled source blocks until it settles;
// only the caller's context can cancel it.
func (e *env) load(ctx context.Context) []listing.Item {
	if ctx == nil {
		ctx = context.Background()
	}
	return e.loader().Load(ctx)
}

// viewFlags narrow the non-interactive commands the same way the TUI keys do.
type viewFlags struct {
	search    string
	sort      string
	host      string
	favorites bool
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "only listings whose title, summary or source contain this text")
	cmd.Flags().StringVar(&f.sort, "sort", string(view.SortRecent), "sort order: recent, az, price")
	cmd.Flags().StringVar(&f.host, "host", "", "only listings whose link contains this host (overrides --search)")
	cmd.Flags().BoolVar(&f.favorites, "favorites", false, "only favorite listings")
}

// session loads the dataset and replays the flags as session events.
func (e *env) session(ctx context.Context, f viewFlags) (*session.Session, error) {
	sess := session.New(e.load(ctx), e.engine(), e.prefs, e.features())

	events := []session.Event{
		session.SearchChanged{Term: f.search},
		session.SortChanged{Mode: view.ParseSortMode(f.sort)},
	}
	if f.host != "" {
		events = append(events, session.ChipSelected{Host: f.host})
	}
	if f.favorites {
		events = append(events, session.FavoritesOnlyToggled{})
	}
	for _, ev := range events {
		if _, err := sess.Dispatch(ev); err != nil {
			return nil, err
		}
	}
	return sess, nil
}
