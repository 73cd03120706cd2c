package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hfranco/xcl/internal/config"
	"github.com/hfranco/xcl/internal/importer"
)

// pointConfigAt makes the global config resolve inside a fresh temp
// directory for the duration of the test, optionally seeded with a
// config file.
func pointConfigAt(t *testing.T, content string) {
	t.Helper()

	orig := os.Getenv("XDG_CONFIG_HOME")
	tmpDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	config.ResetGlobalConfigCache()
	t.Cleanup(func() {
		os.Setenv("XDG_CONFIG_HOME", orig)
		config.ResetGlobalConfigCache()
	})

	if content == "" {
		return
	}
	dir := filepath.Join(tmpDir, config.GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, config.GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveImportFormat(t *testing.T) {
	tests := []struct {
		name      string
		config    string
		flagValue string
		want      importer.Format
		wantErr   bool
	}{
		{
			name:      "flag beats config",
			config:    "default_format: csv\n",
			flagValue: "tsv",
			want:      importer.FormatTSV,
		},
		{
			name:   "config fallback",
			config: "default_format: csv\n",
			want:   importer.FormatCSV,
		},
		{
			name: "auto when nothing configured",
			want: importer.FormatAuto,
		},
		{
			name:      "unknown format is an error",
			flagValue: "xml",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pointConfigAt(t, tt.config)

			got, err := resolveImportFormat(tt.flagValue)
			if tt.wantErr {
				if err == nil {
					t.Fatal("resolveImportFormat() should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveImportFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveImportFormat(%q) = %q, want %q", tt.flagValue, got, tt.want)
			}
		})
	}
}

func TestDisplayPart(t *testing.T) {
	if got := displayPart("006R01521"); got != "006R01521" {
		t.Errorf("displayPart(006R01521) = %q", got)
	}
	if got := displayPart(""); got != "(no part number)" {
		t.Errorf("displayPart(\"\") = %q, want (no part number)", got)
	}
}
