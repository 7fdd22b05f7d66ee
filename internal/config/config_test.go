package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "boulder.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML(), "embedded")
	if err != nil {
		t.Fatalf("parse embedded: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	p := writeConfig(t, `
loop:
  fps: 10
palette:
  stone: "#123456"
  keys:
    1: "#abcdef"
paths:
  levels_dir: ./levels
`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Loop.FPS != 10 {
		t.Errorf("fps = %d, want 10", cfg.Loop.FPS)
	}
	if cfg.Display.CellWidth != 2 || cfg.Display.TileSize != 30 {
		t.Errorf("display not defaulted: %+v", cfg.Display)
	}
	if cfg.Palette.Box != "#8b4513" {
		t.Errorf("box = %q, want default", cfg.Palette.Box)
	}
	if cfg.Paths.LevelsDir != "./levels" {
		t.Errorf("levels dir = %q", cfg.Paths.LevelsDir)
	}

	p2 := cfg.CorePalette()
	if p2.Stone != "#123456" {
		t.Errorf("core stone = %q", p2.Stone)
	}
	if p2.KeyColor(1) != "#abcdef" {
		t.Errorf("key 1 = %q", p2.KeyColor(1))
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	p := writeConfig(t, "palette:\n  flux: \"green\"\n")

	_, err := Load(p)
	if err == nil {
		t.Fatal("expected error for invalid color")
	}
	if !strings.Contains(err.Error(), "flux") {
		t.Errorf("error %q should name the palette entry", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	p := writeConfig(t, "loop: [1, 2\n")

	if _, err := Load(p); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNormalizeFixesNonPositive(t *testing.T) {
	cfg := BoulderConfig{
		Loop:    LoopConfig{FPS: -5},
		Display: DisplayConfig{TileSize: 0, CellWidth: -1},
	}
	cfg.Normalize()

	def := DefaultConfig()
	if cfg.Loop.FPS != def.Loop.FPS {
		t.Errorf("fps = %d", cfg.Loop.FPS)
	}
	if cfg.Display != def.Display {
		t.Errorf("display = %+v", cfg.Display)
	}
	if cfg.Paths.Database != def.Paths.Database {
		t.Errorf("database = %q", cfg.Paths.Database)
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{fps: 10, want: 100 * time.Millisecond},
		{fps: 50, want: 20 * time.Millisecond},
		{fps: 0, want: time.Second / 30},
	}

	for _, tt := range tests {
		cfg := BoulderConfig{Loop: LoopConfig{FPS: tt.fps}}
		if got := cfg.TickInterval(); got != tt.want {
			t.Errorf("TickInterval(fps=%d) = %v, want %v", tt.fps, got, tt.want)
		}
	}
}
