package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cpdraw"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	c, err := FromLookup(lookupMap(nil))
	if err != nil {
		t.Fatal(err)
	}
	if c != Default() {
		t.Errorf("got %+v, want %+v", c, Default())
	}
}

func TestFromLookup(t *testing.T) {
	c, err := FromLookup(lookupMap(map[string]string{
		"CPDRAW_WIDTH":            "640",
		"CPDRAW_HEIGHT":           " 480 ",
		"CPDRAW_BUBBLES":          "0",
		"CPDRAW_POINTS_PER_METER": "32.5",
		"CPDRAW_DEBUG_FLAGS":      "shapes,aabb",
		"CPDRAW_SHOW_DEBUG":       "true",
		"CPDRAW_SEED":             "-7",
		"CPDRAW_LOG_LEVEL":        "debug",
		"CPDRAW_UNUSED":           "x",
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Width:          640,
		Height:         480,
		Bubbles:        0,
		PointsPerMeter: 32.5,
		DebugFlags:     cpdraw.DrawShapes | cpdraw.DrawAABB,
		ShowDebug:      true,
		Seed:           -7,
		LogLevel:       slog.LevelDebug,
	}
	if c != want {
		t.Errorf("got %+v, want %+v", c, want)
	}
}

func TestFromLookup_Invalid(t *testing.T) {
	tests := []map[string]string{
		{"CPDRAW_WIDTH": "wide"},
		{"CPDRAW_HEIGHT": "0"},
		{"CPDRAW_BUBBLES": "-1"},
		{"CPDRAW_POINTS_PER_METER": "-2"},
		{"CPDRAW_DEBUG_FLAGS": "sparkles"},
		{"CPDRAW_SHOW_DEBUG": "maybe"},
		{"CPDRAW_SEED": "1.5"},
		{"CPDRAW_LOG_LEVEL": "loud"},
	}
	for _, env := range tests {
		if _, err := FromLookup(lookupMap(env)); !errors.Is(err, ErrInvalid) {
			t.Errorf("%v: err = %v, want %v", env, err, ErrInvalid)
		}
	}

	_, err := FromLookup(lookupMap(map[string]string{"CPDRAW_DEBUG_FLAGS": "sparkles"}))
	if !errors.Is(err, cpdraw.ErrUnknownFlag) {
		t.Errorf("err = %v, want it to wrap %v", err, cpdraw.ErrUnknownFlag)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	data := "CPDRAW_BUBBLES=5\nCPDRAW_SEED=11\n# comment\nCPDRAW_SHOW_DEBUG=1\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CPDRAW_SEED", "12")

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Bubbles != 5 || !c.ShowDebug {
		t.Errorf("file values not applied: %+v", c)
	}
	if c.Seed != 12 {
		t.Errorf("Seed = %d, want the environment to win", c.Seed)
	}

	if _, err := Load(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing file: %v", err)
	}
	if _, err := Load(""); err != nil {
		t.Errorf("no file: %v", err)
	}
}
