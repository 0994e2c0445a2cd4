// ABOUTME: Tests for startup logging and the fatal-error path of run
// ABOUTME: Drives run on a VirtualTerminal to check restoration, logging and the exit status

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/xim/internal/config"
	xlog "github.com/mauromedda/xim/internal/log"
	"github.com/mauromedda/xim/pkg/tui/ansi"
	"github.com/mauromedda/xim/pkg/tui/terminal"
)

func TestSetupLogging_WritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xim.log")
	cfg := &config.Settings{LogFile: path, LogLevel: "info"}

	closeLog, err := setupLogging(cfg, false)
	if err != nil {
		t.Fatalf("setupLogging() unexpected error: %v", err)
	}
	xlog.Info("probe %d", 42)
	xlog.Debug("hidden")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "probe 42") {
		t.Errorf("log file = %q, want the info line", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("log file = %q, debug line written at info level", got)
	}
}

func TestSetupLogging_VerboseForcesDebug(t *testing.T) {
	cfg := &config.Settings{LogLevel: "error"}

	closeLog, err := setupLogging(cfg, true)
	if err != nil {
		t.Fatalf("setupLogging() unexpected error: %v", err)
	}
	defer closeLog()

	if got := xlog.GetLevel(); got != xlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want debug", got)
	}
}

func TestSetupLogging_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Settings{LogLevel: "chatty"}

	if _, err := setupLogging(cfg, false); err == nil {
		t.Error("setupLogging() expected error for unknown level")
	}
}

func TestSetupLogging_UnwritableLogFile(t *testing.T) {
	cfg := &config.Settings{LogFile: filepath.Join(t.TempDir(), "missing", "xim.log")}

	if _, err := setupLogging(cfg, false); err == nil {
		t.Error("setupLogging() expected error for a log file in a missing directory")
	}
}

// writeConfig writes a config file that logs to a file in a temp dir and
// returns the config path and the log path.
func writeConfig(t *testing.T) (cfgPath, logPath string) {
	t.Helper()
	t.Setenv(config.EnvLogFile, "")

	dir := t.TempDir()
	logPath = filepath.Join(dir, "xim.log")
	cfgPath = filepath.Join(dir, "config.yaml")
	data := "log_file: " + logPath + "\nlog_level: info\n"
	if err := os.WriteFile(cfgPath, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return cfgPath, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRun_GeometryFailureRestoresAndLogs(t *testing.T) {
	cfgPath, logPath := writeConfig(t)

	vt := terminal.NewVirtualTerminal(0, 0)
	vt.FailSize(errors.New("inappropriate ioctl for device"))
	vt.FeedString("\x1b[24R")

	err := run(vt, cliArgs{configPath: cfgPath})
	if !errors.Is(err, terminal.ErrGeometryUnavailable) {
		t.Fatalf("run() = %v, want ErrGeometryUnavailable", err)
	}
	if !strings.Contains(err.Error(), "probing window size") {
		t.Errorf("run() error %q does not name the failing operation", err)
	}
	if vt.EnterCount() != 1 {
		t.Errorf("EnterCount() = %d, want 1", vt.EnterCount())
	}
	if vt.IsRawMode() {
		t.Error("raw mode still active after run returned an error")
	}
	if got := readLog(t, logPath); !strings.Contains(got, "[ERROR] probing window size") {
		t.Errorf("log file = %q, want the fatal error", got)
	}
}

func TestRun_EditorFailureRestoresAndLogs(t *testing.T) {
	cfgPath, logPath := writeConfig(t)

	// No scripted input: the first key read fails.
	vt := terminal.NewVirtualTerminal(80, 24)

	err := run(vt, cliArgs{configPath: cfgPath})
	if !errors.Is(err, terminal.ErrIO) {
		t.Fatalf("run() = %v, want ErrIO", err)
	}
	if vt.IsRawMode() {
		t.Error("raw mode still active after run returned an error")
	}
	if got := readLog(t, logPath); !strings.Contains(got, "[ERROR] reading key") {
		t.Errorf("log file = %q, want the fatal error", got)
	}
}

func TestRun_QuitLeavesNoErrorInLog(t *testing.T) {
	cfgPath, logPath := writeConfig(t)

	vt := terminal.NewVirtualTerminal(80, 24)
	vt.Feed(0x11)

	if err := run(vt, cliArgs{configPath: cfgPath}); err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}
	if vt.IsRawMode() {
		t.Error("raw mode still active after quit")
	}
	if got := readLog(t, logPath); strings.Contains(got, "[ERROR]") {
		t.Errorf("log file = %q, want no error lines", got)
	}
}

func TestFatal_SingleDiagnosticAndExitStatus(t *testing.T) {
	vt := terminal.NewVirtualTerminal(80, 24)
	if err := vt.EnterRawMode(); err != nil {
		t.Fatal(err)
	}
	var stderr bytes.Buffer
	err := errors.New("probing window size: boom")

	if code := fatal(vt, &stderr, err); code != 1 {
		t.Errorf("fatal() = %d, want 1", code)
	}
	if vt.IsRawMode() {
		t.Error("raw mode still active after fatal")
	}
	if got, want := vt.Output(), ansi.ClearScreen+ansi.CursorHome; got != want {
		t.Errorf("terminal output = %q, want %q", got, want)
	}
	out := stderr.String()
	if strings.Count(out, "probing window size: boom") != 1 {
		t.Errorf("stderr = %q, want the error exactly once", out)
	}
	if strings.Contains(out, "[ERROR]") {
		t.Errorf("stderr = %q, logger output leaked to stderr", out)
	}
}
