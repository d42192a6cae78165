package application

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/configloader/internal/config"
	"github.com/eugenenazirov/configloader/pkg/configloader"
)

func TestRunRendersEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT,9090\nNAME,svc\nDEBUG,false\nnot an entry\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg := baseTestConfig(path)
	cfg.Delimiter = configloader.Comma

	app, err := New(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var out bytes.Buffer
	if err := app.Run(&out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if decoded["PORT"] != 9090.0 || decoded["NAME"] != "svc" || decoded["DEBUG"] != false {
		t.Fatalf("unexpected output: %v", decoded)
	}
	if len(decoded) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(decoded))
	}
}

func TestRunMissingFile(t *testing.T) {
	app, err := New(baseTestConfig(filepath.Join(t.TempDir(), "missing.env")), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := app.Run(&bytes.Buffer{}); !errors.Is(err, configloader.ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
}

func TestNewRequiresLogger(t *testing.T) {
	if _, err := New(baseTestConfig(".env"), nil); err == nil {
		t.Fatalf("expected error for missing logger")
	}
}

func baseTestConfig(path string) config.Config {
	return config.Config{
		FilePath:  path,
		Delimiter: configloader.Equals,
		Output:    "json",
		LogLevel:  "debug",
	}
}
