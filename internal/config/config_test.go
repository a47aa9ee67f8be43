package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "platformer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	path := writeConfig(t, string(DefaultYAML()))

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("embedded config = %+v, expected %+v", loaded, cfg)
	}
}

func TestLoadPlatformerFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Errorf("LoadPlatformer() = %+v, expected defaults", cfg)
	}
}

func TestLoadPlatformerUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".platformer", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "platformer.yaml"), []byte("player:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() error = %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Player.Lives)
	}
	if got := ResolvePath(""); got != filepath.Join(dir, "platformer.yaml") {
		t.Errorf("ResolvePath() = %q", got)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeConfig(t, "physics:\n  gravity: 1.2\ntimers:\n  star: 5s\n")

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() error = %v", err)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("Gravity = %g, expected 1.2", cfg.Physics.Gravity)
	}
	if cfg.Timers.Star != 5*time.Second {
		t.Errorf("Star = %s, expected 5s", cfg.Timers.Star)
	}
	if cfg.Screen.Tile != 64 {
		t.Errorf("Tile = %d, expected untouched default 64", cfg.Screen.Tile)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }},
		{"bad yaml", func(t *testing.T) string { return writeConfig(t, "screen: [1, 2\n") }},
		{"invalid values", func(t *testing.T) string { return writeConfig(t, "player:\n  lives: 0\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPlatformer(tt.path(t)); err == nil {
				t.Error("LoadPlatformer() expected error, got nil")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlatformerConfig)
		fields []string
	}{
		{"default", func(*PlatformerConfig) {}, nil},
		{"tile", func(c *PlatformerConfig) { c.Screen.Tile = 1 }, []string{"screen.tile"}},
		{"coins", func(c *PlatformerConfig) { c.Items.MaxCoins = 11 }, []string{"items.max_coins"}},
		{"friction", func(c *PlatformerConfig) { c.Player.Friction = 1 }, []string{"player.friction"}},
		{"two fields", func(c *PlatformerConfig) {
			c.Physics.Gravity = 0
			c.Player.Lives = 0
		}, []string{"physics.gravity", "player.lives"}},
		{"level", func(c *PlatformerConfig) {
			c.Level = &LevelConfig{
				Blocks:  []BlockConfig{{State: "lava"}, {State: "full", Item: "cake"}},
				Objects: []ObjectConfig{{W: 0, H: 10}},
			}
		}, []string{"level.blocks[0].state", "level.blocks[1].item", "level.objects[0]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.fields == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			for _, field := range tt.fields {
				if !hasField(err, field) {
					t.Errorf("Validate() = %v, expected error for %s", err, field)
				}
			}
		})
	}
}

func hasField(err error, field string) bool {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return false
	}
	for _, e := range joined.Unwrap() {
		var ve ValidationError
		if errors.As(e, &ve) && ve.Field == field {
			return true
		}
	}
	return false
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		star   time.Duration
	}{
		{DifficultyEasy, 5, 30 * time.Second},
		{DifficultyNormal, 3, 20 * time.Second},
		{DifficultyHard, 1, 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			ApplyPlatformerPreset(&cfg, tt.preset)
			if cfg.Player.Lives != tt.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tt.lives)
			}
			if cfg.Timers.Star != tt.star {
				t.Errorf("Star = %s, expected %s", cfg.Timers.Star, tt.star)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) expected error")
	}
}

func TestWatcherReload(t *testing.T) {
	path := writeConfig(t, "player:\n  lives: 3\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("player:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs:
		if cfg.Player.Lives != 9 {
			t.Errorf("reloaded Lives = %d, expected 9", cfg.Player.Lives)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error = %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
