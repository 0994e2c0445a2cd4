// ABOUTME: Tests for config loading, merging and validation
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	d := Defaults("1.2.3")
	if d.Banner != "Xim editor -- version 1.2.3" {
		t.Errorf("Banner = %q", d.Banner)
	}
	if d.Placeholder != "~" {
		t.Errorf("Placeholder = %q, want ~", d.Placeholder)
	}
	if d.QuitKey != "ctrl+q" {
		t.Errorf("QuitKey = %q, want ctrl+q", d.QuitKey)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Banner: "global", Placeholder: "~", LogLevel: "warn"}
	project := &Settings{Banner: "project"}

	result := merge(global, project)

	if result.Banner != "project" {
		t.Errorf("Banner = %q, want %q", result.Banner, "project")
	}
	if result.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", result.LogLevel)
	}
	if global.Banner != "global" {
		t.Error("merge must not mutate its inputs")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	if result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/config.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if s == nil {
		t.Fatal("expected non-nil Settings")
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "banner: [unterminated\n")

	if _, err := loadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_LayersProjectOverGlobal(t *testing.T) {
	dir := t.TempDir()
	global := filepath.Join(dir, "global.yaml")
	writeFile(t, global, "banner: from global\nquit_key: ctrl+x\nlog_level: debug\n")
	writeFile(t, ProjectConfigFile(dir), "banner: from project\n")
	t.Setenv(EnvLogFile, "")

	s, err := Load("dev", dir, global)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if s.Banner != "from project" {
		t.Errorf("Banner = %q, want project value", s.Banner)
	}
	if s.QuitKey != "ctrl+x" {
		t.Errorf("QuitKey = %q, want ctrl+x from global", s.QuitKey)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", s.LogLevel)
	}
	if s.Placeholder != "~" {
		t.Errorf("Placeholder = %q, want default", s.Placeholder)
	}
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	dir := t.TempDir()

	_, err := Load("dev", dir, filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want not-exist", err)
	}
}

func TestLoad_EnvOverridesAndExpansion(t *testing.T) {
	dir := t.TempDir()
	global := filepath.Join(dir, "global.yaml")
	writeFile(t, global, "banner: hello ${XIM_TEST_USER}\nlog_file: /tmp/ignored.log\n")
	t.Setenv("XIM_TEST_USER", "gopher")
	t.Setenv(EnvLogFile, "/tmp/xim.log")

	s, err := Load("dev", dir, global)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if s.Banner != "hello gopher" {
		t.Errorf("Banner = %q, want expanded", s.Banner)
	}
	if s.LogFile != "/tmp/xim.log" {
		t.Errorf("LogFile = %q, want env override", s.LogFile)
	}
}

func TestLoad_InvalidQuitKey(t *testing.T) {
	dir := t.TempDir()
	global := filepath.Join(dir, "global.yaml")
	writeFile(t, global, "quit_key: alt+q\n")

	if _, err := Load("dev", dir, global); err == nil {
		t.Fatal("expected validation error for alt+q")
	}
}

func TestValidate_EmptyPlaceholder(t *testing.T) {
	t.Parallel()

	s := Defaults("dev")
	s.Placeholder = ""
	if err := s.Validate(); err == nil {
		t.Error("expected error for empty placeholder")
	}
}
