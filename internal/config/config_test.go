package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/eugenenazirov/configloader/pkg/configloader"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.FilePath != defaultFilePath {
		t.Fatalf("expected default file %s, got %s", defaultFilePath, cfg.FilePath)
	}
	if cfg.Delimiter != configloader.Equals {
		t.Fatalf("expected default delimiter, got %s", cfg.Delimiter)
	}
	if cfg.Output != "yaml" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	content := "file: /etc/app.env\ndelimiter: colon\noutput: JSON\nlog_level: debug\n"
	if err := os.WriteFile(settings, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	t.Run("yaml over defaults", func(t *testing.T) {
		cfg, err := Load(&CLIOverrides{ConfigFile: settings})
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.FilePath != "/etc/app.env" || cfg.Delimiter != configloader.Colon {
			t.Fatalf("expected YAML values, got %+v", cfg)
		}
		if cfg.Output != "json" || cfg.LogLevel != "debug" {
			t.Fatalf("expected YAML values, got %+v", cfg)
		}
	})

	t.Run("flags over yaml", func(t *testing.T) {
		file := "local.env"
		delimiter := ";"
		output := "toml"
		cfg, err := Load(&CLIOverrides{ConfigFile: settings, FilePath: &file, Delimiter: &delimiter, Output: &output})
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.FilePath != "local.env" || cfg.Delimiter != configloader.Semicolon || cfg.Output != "toml" {
			t.Fatalf("expected flag values, got %+v", cfg)
		}
		if cfg.LogLevel != "debug" {
			t.Fatalf("expected YAML log level to survive, got %s", cfg.LogLevel)
		}
	})
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("delimiter", func(t *testing.T) {
		delimiter := "|"
		_, err := Load(&CLIOverrides{Delimiter: &delimiter})
		if !errors.Is(err, configloader.ErrInvalidDelimiter) {
			t.Fatalf("expected ErrInvalidDelimiter, got %v", err)
		}
	})

	t.Run("output", func(t *testing.T) {
		output := "xml"
		if _, err := Load(&CLIOverrides{Output: &output}); err == nil {
			t.Fatalf("expected error for unknown output")
		}
	})

	t.Run("missing settings file", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "none.yaml")}); err == nil {
			t.Fatalf("expected error for missing settings file")
		}
	})

	t.Run("malformed settings file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("file: [unterminated"), 0o644); err != nil {
			t.Fatalf("write settings: %v", err)
		}
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for malformed YAML")
		}
	})
}
