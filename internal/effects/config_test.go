package effects

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "grc_effects.json"))

	if !cfg.Bools["drop_shadows"] {
		t.Error("drop_shadows should default to true")
	}
	if cfg.Bools["grid_overlay"] {
		t.Error("grid_overlay should default to false")
	}
	if cfg.Modes["ambient_particles"] != "off" {
		t.Errorf("ambient_particles = %q, want off", cfg.Modes["ambient_particles"])
	}
	if cfg.Modes["click_sound"] != "off" {
		t.Errorf("click_sound = %q, want off", cfg.Modes["click_sound"])
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grc_effects.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if !cfg.Bools["drop_shadows"] {
		t.Error("corrupt file should fall back to defaults")
	}
}

func TestLoadMergesRecognisedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grc_effects.json")
	content := `{
		"drop_shadows": false,
		"ambient_particles": "snow",
		"unknown_key": 42,
		"click_ripple": "not-a-bool"
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.Bools["drop_shadows"] {
		t.Error("drop_shadows should load as false")
	}
	if cfg.Modes["ambient_particles"] != "snow" {
		t.Errorf("ambient_particles = %q, want snow", cfg.Modes["ambient_particles"])
	}
	// Wrong-typed value is ignored, default kept.
	if !cfg.Bools["click_ripple"] {
		t.Error("wrong-typed click_ripple should keep default true")
	}
}

func TestLoadLegacyAmbientBool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grc_effects.json")
	if err := os.WriteFile(path, []byte(`{"ambient_particles": true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.Modes["ambient_particles"] != "bubbles" {
		t.Errorf("legacy true should coerce to bubbles, got %q", cfg.Modes["ambient_particles"])
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "grc_effects.json")

	cfg := Defaults()
	if err := cfg.SetBool("grid_overlay", true); err != nil {
		t.Fatal(err)
	}
	if err := cfg.SetMode("click_sound", "coin"); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Load(path)
	if !loaded.Bools["grid_overlay"] {
		t.Error("grid_overlay should round-trip as true")
	}
	if loaded.Modes["click_sound"] != "coin" {
		t.Errorf("click_sound = %q, want coin", loaded.Modes["click_sound"])
	}

	// The on-disk schema is one flat JSON object, the drawing layer's contract.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}
	if flat["click_sound"] != "coin" {
		t.Errorf("flat schema click_sound = %v", flat["click_sound"])
	}
	if flat["drop_shadows"] != true {
		t.Errorf("flat schema drop_shadows = %v", flat["drop_shadows"])
	}
}

func TestSetBoolUnknown(t *testing.T) {
	cfg := Defaults()
	if err := cfg.SetBool("sparkle_mode", true); err == nil {
		t.Error("unknown effect should be rejected")
	}
}

func TestSetModeValidation(t *testing.T) {
	cfg := Defaults()
	if err := cfg.SetMode("ambient_particles", "lava"); err == nil {
		t.Error("invalid mode value should be rejected")
	}
	if err := cfg.SetMode("ambient_particles", "confetti"); err != nil {
		t.Errorf("confetti is a valid ambient mode: %v", err)
	}
	if err := cfg.SetMode("drop_shadows", "on"); err == nil {
		t.Error("boolean effect should not accept SetMode")
	}
}
