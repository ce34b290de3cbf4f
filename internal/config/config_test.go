package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ganttview.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	def := DefaultConfig()
	if cfg.ListenAddr != def.ListenAddr || cfg.ChartWidth != def.ChartWidth {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
	if !cfg.ShowLegend {
		t.Error("legend should default to on")
	}
}

func TestLoad_OverridesAndBackfill(t *testing.T) {
	path := writeConfig(t, "listen_addr: localhost:9000\nchart_width: 640\nlane_height: 0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != "localhost:9000" {
		t.Errorf("listen_addr not applied: %+v", cfg)
	}
	if cfg.ChartWidth != 640 {
		t.Errorf("chart_width not applied: %+v", cfg)
	}
	if cfg.LaneHeight != DefaultConfig().LaneHeight {
		t.Errorf("non-positive lane_height should backfill the default, got %d", cfg.LaneHeight)
	}
}

func TestLoad_PaletteValidation(t *testing.T) {
	path := writeConfig(t, "palette: ['#112233', 'magenta']\n")
	if _, err := Load(path); err == nil {
		t.Fatal("non-hex palette entry should be rejected")
	}

	path = writeConfig(t, "palette: ['#112233', '#AABBCC']\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("valid palette rejected: %v", err)
	}
	colors := cfg.PaletteColors()
	if len(colors) != 2 || colors[0] != "#112233" {
		t.Errorf("unexpected palette colors: %v", colors)
	}
}

func TestPaletteColors_NilWhenUnset(t *testing.T) {
	if DefaultConfig().PaletteColors() != nil {
		t.Error("unset palette should map to nil so the built-in palette is used")
	}
}
