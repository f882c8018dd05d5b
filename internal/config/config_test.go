package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvLogFile, "")
	path := filepath.Join(t.TempDir(), "nested", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(data), "backend") || !strings.Contains(string(data), BackendMemory) {
		t.Fatalf("unexpected file contents:\n%s", data)
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again != cfg {
		t.Fatalf("reload differs: %+v", again)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvLogFile, "")
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	body := "backend = \"sqlite\"\n\n[keys]\ndelete = \"x\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != BackendSQLite {
		t.Fatalf("backend %q", cfg.Backend)
	}
	if cfg.Keys.Delete != "x" || cfg.Keys.Add != "a" || cfg.Keys.Toggle != " " {
		t.Fatalf("unexpected keys %+v", cfg.Keys)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad toml", "backend = "},
		{"unknown backend", "backend = \"postgres\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvBackend, "")
			path := filepath.Join(t.TempDir(), DefaultConfigFileName)
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadOrCreate(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvBackend, "SQLite")
	t.Setenv(EnvLogFile, "/tmp/tasklist.log")
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != BackendSQLite || cfg.LogFile != "/tmp/tasklist.log" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestResolveConfigPath(t *testing.T) {
	if got := ResolveConfigPath("explicit.toml"); got != "explicit.toml" {
		t.Fatalf("flag ignored: %q", got)
	}
	t.Setenv(EnvConfig, "/etc/tasklist.toml")
	if got := ResolveConfigPath(""); got != "/etc/tasklist.toml" {
		t.Fatalf("env ignored: %q", got)
	}
	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", "/home/u/.config")
	got := ResolveConfigPath("")
	if got != filepath.Join("/home/u/.config", AppDirName, DefaultConfigFileName) {
		t.Fatalf("unexpected default path %q", got)
	}
}
