package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dropchain.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DROPCHAIN_CONFIG", "")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := [][]string{{"A"}, {"B", "C"}, {}}
	if diff := cmp.Diff(want, c.Layout.Slots, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("default slots (-want +got):\n%s", diff)
	}
	if c.Layout.Strategy != "center" {
		t.Errorf("Expected center strategy, got %q", c.Layout.Strategy)
	}
	if !c.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if c.Log.Level != "info" {
		t.Errorf("Expected info level, got %q", c.Log.Level)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Defaults must validate: %v", err)
	}
}

func TestLoadFileFromEnv(t *testing.T) {
	path := writeConfig(t, `
[layout]
slots = [["X", "Y"], ["Z"]]
strategy = "area"

[audio]
enabled = false
`)
	t.Setenv("DROPCHAIN_CONFIG", path)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([][]string{{"X", "Y"}, {"Z"}}, c.Layout.Slots); diff != "" {
		t.Errorf("slots (-want +got):\n%s", diff)
	}
	if c.Layout.Strategy != "area" {
		t.Errorf("Expected area strategy, got %q", c.Layout.Strategy)
	}
	if c.Audio.Enabled {
		t.Error("Expected audio disabled from file")
	}
	if c.Log.Level != "info" {
		t.Errorf("Expected default level kept, got %q", c.Log.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[layout]\nstrategy = \"area\"\n")
	t.Setenv("DROPCHAIN_LAYOUT_STRATEGY", "none")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Layout.Strategy != "none" {
		t.Errorf("Expected env override none, got %q", c.Layout.Strategy)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("Expected error for explicit missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  LayoutConfig
		wantErr bool
	}{
		{"default", LayoutConfig{Slots: [][]string{{"A"}, {"B", "C"}, {}}, Strategy: "center"}, false},
		{"empty strategy means center", LayoutConfig{Slots: [][]string{{"A"}}}, false},
		{"duplicate across slots", LayoutConfig{Slots: [][]string{{"A"}, {"B", "A"}}, Strategy: "center"}, true},
		{"duplicate within slot", LayoutConfig{Slots: [][]string{{"A", "A"}}, Strategy: "center"}, true},
		{"empty label", LayoutConfig{Slots: [][]string{{""}}, Strategy: "center"}, true},
		{"no slots", LayoutConfig{Strategy: "center"}, true},
		{"unknown strategy", LayoutConfig{Slots: [][]string{{"A"}}, Strategy: "edge"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{Layout: tt.layout}.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
