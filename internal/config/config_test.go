package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"aurgen/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origWD); err != nil {
			t.Fatalf("Chdir back: %v", err)
		}
	})

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if cfg.Paths.TranscriptDir != cwd {
		t.Fatalf("unexpected transcript dir: got %q want %q", cfg.Paths.TranscriptDir, cwd)
	}
	if cfg.Paths.OutputDir != "" {
		t.Fatalf("expected empty output dir default, got %q", cfg.Paths.OutputDir)
	}
	if cfg.ResolvedOutputDir() != cwd {
		t.Fatalf("ResolvedOutputDir = %q, want %q", cfg.ResolvedOutputDir(), cwd)
	}
	wantLogDir := filepath.Join(tempHome, ".local", "share", "aurgen", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.Helper.Name != "yay" {
		t.Fatalf("unexpected helper: %q", cfg.Helper.Name)
	}
	if !cfg.Helper.Needed || !cfg.Helper.Sudoloop || !cfg.Helper.Batchinstall || !cfg.Helper.Asdeps {
		t.Fatalf("expected all helper flags on by default: %+v", cfg.Helper)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if cfg.History.Path != filepath.Join(wantLogDir, "history.db") {
		t.Fatalf("unexpected history path: %q", cfg.History.Path)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadReadsFileAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[paths]\n" +
		"transcript_dir = \"~/transcripts\"\n" +
		"output_dir = \"~/scripts\"\n" +
		"[helper]\n" +
		"name = \"paru\"\n" +
		"sudoloop = false\n" +
		"[logging]\n" +
		"format = \"json\"\n" +
		"level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Paths.TranscriptDir != filepath.Join(tempHome, "transcripts") {
		t.Fatalf("transcript dir not expanded: %q", cfg.Paths.TranscriptDir)
	}
	if cfg.ResolvedOutputDir() != filepath.Join(tempHome, "scripts") {
		t.Fatalf("output dir not expanded: %q", cfg.ResolvedOutputDir())
	}
	if cfg.Helper.Name != "paru" {
		t.Fatalf("helper not read: %q", cfg.Helper.Name)
	}
	if cfg.Helper.Sudoloop {
		t.Fatal("sudoloop should be disabled")
	}
	if !cfg.Helper.Needed {
		t.Fatal("unset helper flags keep their defaults")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty helper", "[helper]\nname = \"\"\n"},
		{"helper with space", "[helper]\nname = \"yay --devel\"\n"},
		{"bad format", "[logging]\nformat = \"xml\"\n"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.TranscriptDir = filepath.Join(base, "transcripts")
	cfg.Paths.OutputDir = filepath.Join(base, "scripts")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory %q not created: %v", dir, err)
		}
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	if cfg.Helper.Name != "yay" {
		t.Fatalf("sample helper: %q", cfg.Helper.Name)
	}
}
