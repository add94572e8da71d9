package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eugenenazirov/toolconfig/internal/toolconfig"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TOOLCONFIG_ROOT", "TOOLCONFIG_FILE", "TOOLCONFIG_LOG_LEVEL", "TOOLCONFIG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func strPtr(s string) *string {
	return &s
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Root != "" {
		t.Fatalf("expected empty root, got %s", cfg.Root)
	}
	if cfg.FileName != toolconfig.DefaultFileName {
		t.Fatalf("expected default file name, got %s", cfg.FileName)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("expected log level %s, got %s", defaultLogLevel, cfg.LogLevel)
	}
	if cfg.Format != FormatText {
		t.Fatalf("expected format %s, got %s", FormatText, cfg.Format)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOOLCONFIG_ROOT", "/srv/project")
	t.Setenv("TOOLCONFIG_LOG_LEVEL", " DEBUG ")
	t.Setenv("TOOLCONFIG_FORMAT", "json")

	cfg, err := Load(&CLIOverrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Root != "/srv/project" {
		t.Fatalf("expected root from env, got %s", cfg.Root)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected normalized log level, got %s", cfg.LogLevel)
	}
	if cfg.Format != FormatJSON {
		t.Fatalf("expected json format, got %s", cfg.Format)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOOLCONFIG_ROOT", "/from/env")
	t.Setenv("TOOLCONFIG_FILE", "env.json")
	t.Setenv("TOOLCONFIG_LOG_LEVEL", "warn")

	settings := writeSettings(t, "root: /from/yaml\nfile: yaml.json\nformat: yaml\n")

	cfg, err := Load(&CLIOverrides{
		SettingsFile: settings,
		Root:         strPtr("/from/cli"),
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Root != "/from/cli" {
		t.Fatalf("expected CLI root to win, got %s", cfg.Root)
	}
	if cfg.FileName != "yaml.json" {
		t.Fatalf("expected YAML file name to beat env, got %s", cfg.FileName)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected env log level, got %s", cfg.LogLevel)
	}
	if cfg.Format != FormatYAML {
		t.Fatalf("expected yaml format, got %s", cfg.Format)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing settings file", func(t *testing.T) {
		_, err := Load(&CLIOverrides{SettingsFile: filepath.Join(t.TempDir(), "absent.yaml")})
		if err == nil {
			t.Fatalf("expected error for missing settings file")
		}
	})

	t.Run("malformed settings file", func(t *testing.T) {
		_, err := Load(&CLIOverrides{SettingsFile: writeSettings(t, "root: [unterminated\n")})
		if err == nil {
			t.Fatalf("expected error for malformed YAML")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{Format: strPtr("xml")}); err == nil {
			t.Fatalf("expected error for unsupported format")
		}
	})

	t.Run("unknown log level", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{LogLevel: strPtr("verbose")}); err == nil {
			t.Fatalf("expected error for unsupported log level")
		}
	})
}

func TestLoaderOptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tools.json"), []byte(`{"tools": {"maven": {"path": "/usr/bin/mvn"}}}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Config{Root: dir, FileName: "tools.json", LogLevel: "info", Format: FormatText}

	l, err := toolconfig.New(cfg.LoaderOptions()...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got, _ := l.Maven(); got != "/usr/bin/mvn" {
		t.Fatalf("expected /usr/bin/mvn, got %s", got)
	}
}
