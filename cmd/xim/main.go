// ABOUTME: CLI entry point for xim with guaranteed terminal restoration
// ABOUTME: Loads config, enters raw mode, probes geometry, runs the editor; one fatal-error handler

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	// termfix must initialise before the styles below are built so that
	// rendering them never queries the terminal.
	_ "github.com/mauromedda/xim/internal/termfix"

	"github.com/mauromedda/xim/internal/config"
	"github.com/mauromedda/xim/internal/editor"
	xlog "github.com/mauromedda/xim/internal/log"
	"github.com/mauromedda/xim/pkg/tui"
	"github.com/mauromedda/xim/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("%s %s (%s) built %s\n", nameStyle.Render("xim"), version, commit, date)
		os.Exit(0)
	}

	t := terminal.NewProcessTerminal(os.Stdin, os.Stdout)
	defer terminal.RestoreOnPanic(t)

	if err := run(t, args); err != nil {
		os.Exit(fatal(t, os.Stderr, err))
	}
}

// fatal is the one shutdown path for errors returned by run: it clears
// the screen, restores the terminal, prints a single diagnostic to w and
// returns the exit status.
func fatal(t terminal.Terminal, w io.Writer, err error) int {
	terminal.Teardown(t)
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("xim:"), err)
	return 1
}

// run performs the startup sequence and the editor loop. Any returned
// error is fatal; it is logged and the raw-mode session is restored
// before run returns.
func run(t terminal.Terminal, args cliArgs) (err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(version, cwd, args.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	closeLog, err := setupLogging(cfg, args.verbose)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closeLog()
	defer func() {
		if err != nil {
			xlog.Error("%v", err)
		}
	}()

	quitKey, err := config.ParseCtrlKey(cfg.QuitKey)
	if err != nil {
		return fmt.Errorf("quit key: %w", err)
	}

	sess, err := terminal.Open(t)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("restoring terminal: %w", cerr)
		}
	}()

	stopSignals := restoreOnSignal(t)
	defer stopSignals()

	geo, err := terminal.ProbeGeometry(t)
	if err != nil {
		return fmt.Errorf("probing window size: %w", err)
	}
	xlog.Debug("viewport %dx%d", geo.Cols, geo.Rows)

	ed, err := editor.New(t, geo,
		editor.WithQuitKey(quitKey),
		editor.WithScreen(tui.NewScreen(t, cfg.Banner, cfg.Placeholder)),
	)
	if err != nil {
		return err
	}
	return ed.Run()
}

// setupLogging applies the configured level and sink. Without a log
// file, output is discarded: stderr is the raw-mode terminal.
func setupLogging(cfg *config.Settings, verbose bool) (func(), error) {
	level, err := xlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = xlog.LevelDebug
	}
	xlog.SetLevel(level)

	if cfg.LogFile == "" {
		xlog.SetOutput(io.Discard)
		return func() { xlog.SetOutput(os.Stderr) }, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	xlog.SetOutput(f)
	xlog.Info("xim %s starting", version)
	return func() {
		xlog.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
