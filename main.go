package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"termsnake/game"
	"termsnake/game/types"
	"termsnake/ui/terminal"
	"termsnake/ui/window"
)

const (
	frontendTerminal = "terminal"
	frontendWindow   = "window"
)

var errUnknownFrontend = errors.New("unknown frontend")

type options struct {
	cfg      types.Config
	frontend string
	cellSize int
	logPath  string
	logLevel string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	opts := options{cfg: types.DefaultConfig()}
	var wrap string

	fs := flag.NewFlagSet("termsnake", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.cfg.Grid.Width, "width", types.DefaultWidth, "board width in cells, walls included")
	fs.IntVar(&opts.cfg.Grid.Height, "height", types.DefaultHeight, "board height in cells, walls included")
	fs.DurationVar(&opts.cfg.FrameTime, "frame", types.DefaultFrameTime, "time per game tick (lower = faster)")
	fs.StringVar(&wrap, "wrap", "none", "open edges: none, horizontal, vertical or both")
	fs.Uint64Var(&opts.cfg.Seed, "seed", 0, "apple placement seed, 0 picks one from the clock")
	fs.BoolVar(&opts.cfg.DevKeys, "dev", false, "let i/j/k/l move the apple")
	fs.StringVar(&opts.frontend, "frontend", frontendTerminal, "terminal or window")
	fs.IntVar(&opts.cellSize, "cell", 20, "cell size in pixels for the window frontend")
	fs.StringVar(&opts.logPath, "log", "", "append logs to this file (default: no logs)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	w, err := types.ParseWrapMode(wrap)
	if err != nil {
		return opts, err
	}
	opts.cfg.Wrap = w
	if opts.frontend != frontendTerminal && opts.frontend != frontendWindow {
		return opts, fmt.Errorf("%w: %q", errUnknownFrontend, opts.frontend)
	}
	if opts.cellSize < 4 {
		return opts, fmt.Errorf("cell size %d too small", opts.cellSize)
	}
	return opts, opts.cfg.Validate()
}

// setupLogging points logrus at the log file. The screen belongs to the
// renderer, so without a file logs are dropped.
func setupLogging(path, level string) (func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	if path == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f.Close, nil
}

// reportClose runs closeFn and prints any error to w.
func reportClose(w io.Writer, what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		fmt.Fprintf(w, "termsnake: close %s: %v\n", what, err)
	}
}

func play(ctx context.Context, g *game.Game, opts options) error {
	switch opts.frontend {
	case frontendWindow:
		w := window.Open(opts.cfg.Grid, int32(opts.cellSize), opts.cfg.DevKeys)
		defer w.Close()
		return game.NewLoop(g, w, w).Run(ctx)
	default:
		s, err := terminal.Open(opts.cfg.Grid)
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		// Fini restores the cursor and the previous screen contents.
		defer s.Fini()
		r := terminal.NewRenderer(s, opts.cfg.DevKeys)
		return game.NewLoop(g, terminal.NewInput(s, r.Resize), r).Run(ctx)
	}
}

func run() int {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "termsnake:", err)
		return 2
	}

	closeLog, err := setupLogging(opts.logPath, opts.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "termsnake:", err)
		return 1
	}
	defer reportClose(os.Stderr, "log file", closeLog)

	seed := opts.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g, err := game.NewGame(opts.cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		fmt.Fprintln(os.Stderr, "termsnake:", err)
		return 1
	}
	log.WithFields(log.Fields{"session": g.UUID, "seed": seed, "frontend": opts.frontend}).Debug("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := play(ctx, g, opts); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).WithField("session", g.UUID).Error("session failed")
		fmt.Fprintln(os.Stderr, "termsnake:", err)
		return 1
	}
	log.WithField("session", g.UUID).Info("session ended")
	fmt.Println(Summarize(g.UUID, g.Stats()).Render())
	return 0
}

func main() {
	os.Exit(run())
}
