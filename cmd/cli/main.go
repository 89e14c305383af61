package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/labi-le/xbind/internal/config"
	"github.com/labi-le/xbind/internal/lock"
	"github.com/labi-le/xbind/internal/metadata"
	"github.com/labi-le/xbind/internal/monitor"
	"github.com/labi-le/xbind/internal/xgbconn"
	"github.com/labi-le/xbind/internal/xlib"
	"github.com/labi-le/xbind/pkg/xatom"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

// display is what the monitor needs from a backend.
type display interface {
	xatom.Interner
	monitor.Source
	monitor.KeyMapper
	Root() xdef.Window
	SelectInput(w xdef.Window, mask xdef.EventMask) error
}

type selectionWatcher interface {
	WatchSelection(selection xdef.Atom) error
}

type action struct {
	configPath  string
	watchConfig bool
	// overrides holds the flag values; set reports which of them were given.
	overrides config.Config
	set       func(name string) bool

	verbose     bool
	showVersion bool
	showHelp    bool
}

func parseFlags() (config.Config, action) {
	var act action
	overrides := &act.overrides

	flag.StringVarP(&act.configPath, "config", "c", "", "Config file (.yml or .toml). Default: "+config.DefaultPath())
	flag.BoolVar(&act.watchConfig, "watch_config", false, "Re-select the event mask when the config file changes")
	flag.StringVarP(&overrides.Display, "display", "d", "", "X display to connect to. Default: $DISPLAY")
	flag.StringVarP(&overrides.Backend, "backend", "b", config.BackendXGB, "Connection backend: xgb or xlib")
	flag.StringSliceVarP(&overrides.Mask, "mask", "m", nil, "Event mask names selected on the root window")
	flag.StringSliceVarP(&overrides.Types, "type", "t", nil, "Only report these event types")
	flag.StringSliceVarP(&overrides.Atoms, "atom", "a", nil, "Extra atom names to resolve")
	flag.StringSliceVar(&overrides.Selections, "selection", nil, "Selections to watch for owner changes (xgb backend)")
	flag.BoolVar(&overrides.Dedup, "dedup", true, "Drop consecutive identical events")

	flag.BoolVar(&act.verbose, "verbose", false, "Verbose logs")
	flag.BoolVarP(&act.showVersion, "version", "v", false, "Show version")
	flag.BoolVarP(&act.showHelp, "help", "h", false, "Show help")

	flag.Parse()
	act.set = flag.CommandLine.Changed

	if act.showHelp || act.showVersion {
		return config.Default, act
	}

	cfg, err := config.Load(act.configPath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	applyOverrides(&cfg, act.overrides, act.set)

	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid options: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	return cfg, act
}

// applyOverrides copies the flags the user actually set over the file.
func applyOverrides(cfg *config.Config, o config.Config, set func(name string) bool) {
	if set("display") {
		cfg.Display = o.Display
	}
	if set("backend") {
		cfg.Backend = o.Backend
	}
	if set("mask") {
		cfg.Mask = o.Mask
	}
	if set("type") {
		cfg.Types = o.Types
	}
	if set("atom") {
		cfg.Atoms = append(cfg.Atoms, o.Atoms...)
	}
	if set("selection") {
		cfg.Selections = o.Selections
	}
	if set("dedup") {
		cfg.Dedup = o.Dedup
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, act := parseFlags()

	if act.showHelp {
		flag.Usage()
		return
	}

	applyTagsOverrides(&act)
	logger := initLogger(act.verbose)

	logger.Info().EmbedObject(metadata.Build{}).Send()

	if act.showVersion {
		return
	}

	if act.verbose {
		logger.Info().Msg("verbose mode enabled")
	}

	unlock := lock.Must(cfg.Display, logger)
	defer unlock()

	conn, err := open(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.Backend).Msg("failed to open display")
	}

	registry, err := xatom.New(conn, xatom.WithNames(cfg.Atoms...), xatom.WithLogger(logger))
	if err != nil {
		_ = conn.Close()
		logger.Fatal().Err(err).Msg("failed to resolve atoms")
	}
	logger.Info().
		EmbedObject(registry).
		Strs("missing", registry.Missing()).
		Msg("atoms resolved")

	mask, _ := cfg.EventMask()
	types, _ := cfg.EventTypes()
	root := conn.Root()
	if err := conn.SelectInput(root, mask); err != nil {
		logger.Fatal().Err(err).Msg("failed to select input")
	}
	logger.Info().
		Str("root", fmt.Sprintf("%#x", uint64(root))).
		Stringer("mask", mask).
		Msg("watching root window")

	watchSelections(conn, registry, cfg.Selections, logger)

	m := monitor.New(conn,
		monitor.WithNamer(registry),
		monitor.WithKeyMapper(conn),
		monitor.WithTypes(types...),
		monitor.WithDedup(cfg.Dedup),
		monitor.WithLogger(logger),
	)

	if act.watchConfig {
		go watchConfig(ctx, act, conn, m, logger)
	}

	started := time.Now()
	upd := make(chan monitor.Update)
	errc := make(chan error, 1)
	go func() { errc <- m.Watch(ctx, upd) }()

	for u := range upd {
		logger.Info().EmbedObject(u).Msg("event")
	}
	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("monitor stopped")
	}

	stats := m.Stats()
	logger.Info().
		EmbedObject(stats).
		Msgf("%s events (%s) since %s, %s duplicates dropped",
			humanize.Comma(int64(stats.Events)),
			humanize.IBytes(stats.Bytes),
			humanize.Time(started),
			humanize.Comma(int64(stats.Duplicates)),
		)
}

func open(cfg config.Config, logger zerolog.Logger) (display, error) {
	switch cfg.Backend {
	case config.BackendXlib:
		return xlib.Open(cfg.Display, logger)
	default:
		return xgbconn.Open(cfg.Display, logger)
	}
}

func watchSelections(conn display, registry *xatom.Registry, names []string, logger zerolog.Logger) {
	if len(names) == 0 {
		return
	}
	w, ok := conn.(selectionWatcher)
	if !ok {
		logger.Warn().Msg("backend cannot watch selections")
		return
	}
	for _, name := range names {
		sel, state := registry.Lookup(name)
		if sel == xdef.None {
			logger.Warn().Str("selection", name).Stringer("state", state).Msg("selection atom not resolved")
			continue
		}
		if err := w.WatchSelection(sel); err != nil {
			logger.Warn().Err(err).Str("selection", name).Msg("failed to watch selection")
		}
	}
}

func watchConfig(ctx context.Context, act action, conn display, m *monitor.Monitor, logger zerolog.Logger) {
	path := act.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	err := config.Watch(ctx, path, logger, func(cfg config.Config) {
		mask, err := reloadedMask(cfg, act)
		if err != nil {
			logger.Warn().Err(err).Msg("ignoring reloaded config")
			return
		}
		if err := conn.SelectInput(conn.Root(), mask); err != nil {
			logger.Warn().Err(err).Msg("failed to re-select input")
			return
		}
		m.Forget()
		logger.Info().Stringer("mask", mask).Msg("event mask updated")
	})
	if err != nil {
		logger.Warn().Err(err).Msg("config watcher stopped")
	}
}

// reloadedMask is the mask to select after a reload. Flags keep their
// precedence over the file.
func reloadedMask(cfg config.Config, act action) (xdef.EventMask, error) {
	if act.set != nil {
		applyOverrides(&cfg, act.overrides, act.set)
	}
	return cfg.EventMask()
}

func initLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	if verbose {
		zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
			short := file
			for i := len(file) - 1; i > 0; i-- {
				if file[i] == '/' {
					short = file[i+1:]
					break
				}
			}
			file = short
			return fmt.Sprintf("%s:%d", file, line)
		}
		return zerolog.New(output).
			Level(zerolog.TraceLevel).
			With().
			Timestamp().
			Caller().
			Logger()
	}

	return zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}
