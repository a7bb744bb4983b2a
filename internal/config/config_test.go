package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ukaji3/xlscan/pkg/xlscan"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xlscan.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
mode: verbose
keywords:
  - nozzle
  - Flange
sheets: [Inputs]
include_literals: false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	opts := cfg.Options()
	if opts.Mode != xlscan.ModeVerbose {
		t.Errorf("Expected verbose mode, got %q", opts.Mode)
	}
	if !reflect.DeepEqual(opts.Keywords, []string{"nozzle", "Flange"}) {
		t.Errorf("Unexpected keywords %v", opts.Keywords)
	}
	if !reflect.DeepEqual(opts.Sheets, []string{"Inputs"}) {
		t.Errorf("Unexpected sheets %v", opts.Sheets)
	}
	if opts.ShouldIncludeLiterals() {
		t.Error("include_literals: false should override verbose mode")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "sheets: [Sheet1]\n"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	opts := cfg.Options()
	if opts.Mode != xlscan.ModeStandard {
		t.Errorf("Expected standard mode, got %q", opts.Mode)
	}
	if opts.Keywords != nil {
		t.Errorf("Expected default keywords (nil), got %v", opts.Keywords)
	}
}

func TestLoadConfigEmptyKeywords(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "keywords: []\n"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if kw := cfg.Options().Keywords; kw == nil || len(kw) != 0 {
		t.Errorf("Expected an explicit empty keyword set, got %#v", kw)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad mode", "mode: fast\n", "unsupported mode"},
		{"blank keyword", "keywords: [wall, \" \"]\n", "keywords[1]"},
		{"blank sheet", "sheets: [\"\"]\n", "sheets[0]"},
		{"bad yaml", "keywords: [wall\n", "parse config"},
	}

	for _, tt := range tests {
		_, err := LoadConfig(writeConfig(t, tt.content))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: expected error containing %q, got %v", tt.name, tt.want, err)
		}
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("Expected read error, got %v", err)
	}
}
