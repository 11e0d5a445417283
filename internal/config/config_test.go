package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Default(t *testing.T) {
	t.Setenv(EnvVar, "")
	os.Unsetenv(EnvVar)

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !strings.HasSuffix(cfg.DBPath, "main.sqlite") {
		t.Errorf("default DBPath = %q, want the Things main.sqlite path", cfg.DBPath)
	}
	if !strings.Contains(cfg.DBPath, "JLMPQHK86H.com.culturedcode.ThingsMac") {
		t.Errorf("default DBPath = %q, want the Things container path", cfg.DBPath)
	}
	if cfg.TraceLog != "" {
		t.Errorf("default TraceLog = %q, want empty", cfg.TraceLog)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(EnvVar, "/tmp/alternate.sqlite")

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DBPath != "/tmp/alternate.sqlite" {
		t.Errorf("DBPath = %q, want the %s override", cfg.DBPath, EnvVar)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "db: /data/things.sqlite\ntrace_log: /tmp/things-trace.log\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	v := New()
	v.AddConfigPath(dir)
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DBPath != "/data/things.sqlite" {
		t.Errorf("DBPath = %q, want the config file value", cfg.DBPath)
	}
	if cfg.TraceLog != "/tmp/things-trace.log" {
		t.Errorf("TraceLog = %q, want the config file value", cfg.TraceLog)
	}
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("db: /data/things.sqlite\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvVar, "/env/wins.sqlite")

	v := New()
	v.AddConfigPath(dir)
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DBPath != "/env/wins.sqlite" {
		t.Errorf("DBPath = %q, want the environment to win", cfg.DBPath)
	}
}

func TestLoad_ExplicitSetBeatsEnv(t *testing.T) {
	// viper.Set models a bound flag, which has the highest precedence.
	t.Setenv(EnvVar, "/env/loses.sqlite")

	v := New()
	v.Set(KeyDB, "/flag/wins.sqlite")
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DBPath != "/flag/wins.sqlite" {
		t.Errorf("DBPath = %q, want the explicit value to win", cfg.DBPath)
	}
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("db: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	v := New()
	v.AddConfigPath(dir)
	if _, err := Load(v); err == nil {
		t.Fatal("Load() succeeded on a malformed config file")
	}
}
