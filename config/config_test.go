package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Assemble.Verbosity != 0 {
		t.Errorf("default verbosity = %d, exp 0", cfg.Assemble.Verbosity)
	}
	if cfg.Assemble.TextRecordWidth != 30 {
		t.Errorf("default text record width = %d, exp 30", cfg.Assemble.TextRecordWidth)
	}
	if cfg.Shell.Prompt == "" {
		t.Error("default shell prompt is empty")
	}
	if !cfg.Shell.AutoStart {
		t.Error("shell auto-start should default to on")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if cfg.Assemble.TextRecordWidth != 30 {
		t.Error("missing config file should yield defaults")
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `[assemble]
verbosity = 2
text_record_width = 16

[shell]
prompt = "sic> "
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Assemble.Verbosity != 2 {
		t.Errorf("verbosity = %d, exp 2", cfg.Assemble.Verbosity)
	}
	if cfg.Assemble.TextRecordWidth != 16 {
		t.Errorf("text record width = %d, exp 16", cfg.Assemble.TextRecordWidth)
	}
	if cfg.Shell.Prompt != "sic> " {
		t.Errorf("prompt = %q", cfg.Shell.Prompt)
	}
	// Unset fields keep their defaults.
	if cfg.Shell.HistorySize != 1000 {
		t.Errorf("history size = %d, exp 1000", cfg.Shell.HistorySize)
	}
}

func TestLoadInvalidWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[assemble]\ntext_record_width = 99\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for out-of-range text_record_width")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.Assemble.Verbosity = 1
	cfg.Assemble.TextRecordWidth = 20
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\ngot: %+v\nexp: %+v", loaded, cfg)
	}
}
