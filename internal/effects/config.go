// Package effects persists the decorative-effects configuration read by the
// patched drawing layer at render time. The core's only contract toward
// that layer is "file exists at the well-known path with this schema" or
// "absent means defaults".
package effects

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// BoolKeys are the effects toggled on/off.
var BoolKeys = []string{
	"drop_shadows",
	"grid_overlay",
	"port_hover_glow",
	"data_flow_particles",
	"connection_gradient",
	"block_entrance_anim",
	"click_ripple",
	"toolbar_css",
}

// ModeKeys are the effects configured with a string mode rather than a flag,
// mapped to their accepted values.
var ModeKeys = map[string][]string{
	"ambient_particles": {"off", "matrix_rain", "snow", "bubbles", "confetti", "sparks", "dust", "fire"},
	"click_sound":       {"off", "sonar", "click", "coin", "laser", "blip"},
}

// Config is the full effects mapping. Bools and Modes are kept separate so
// lookups stay typed; the JSON file flattens both into one object.
type Config struct {
	Bools map[string]bool
	Modes map[string]string
}

// Defaults returns the documented default configuration.
func Defaults() *Config {
	return &Config{
		Bools: map[string]bool{
			"drop_shadows":        true,
			"grid_overlay":        false,
			"port_hover_glow":     true,
			"data_flow_particles": false,
			"connection_gradient": true,
			"block_entrance_anim": true,
			"click_ripple":        true,
			"toolbar_css":         true,
		},
		Modes: map[string]string{
			"ambient_particles": "off",
			"click_sound":       "off",
		},
	}
}

// DefaultPath returns the well-known config location under the host user
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".gnuradio", "grc_effects.json")
	}
	return filepath.Join(home, ".gnuradio", "grc_effects.json")
}

// Load reads the config at path, merging recognised keys over defaults.
// A missing or unreadable file yields defaults; Load never fails on absence.
// Unknown keys and wrong-typed values are ignored. The legacy encoding
// ambient_particles=true loads as "bubbles".
func Load(path string) *Config {
	cfg := Defaults()

	data, err := os.ReadFile(path) // #nosec G304 - well-known config path
	if err != nil {
		return cfg
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg
	}

	for key := range cfg.Bools {
		if v, ok := raw[key].(bool); ok {
			cfg.Bools[key] = v
		}
	}
	for key := range cfg.Modes {
		switch v := raw[key].(type) {
		case string:
			cfg.Modes[key] = v
		case bool:
			// Legacy boolean ambient toggle.
			if key == "ambient_particles" && v {
				cfg.Modes[key] = "bubbles"
			}
		}
	}

	return cfg
}

// Save writes the config to path, creating the parent directory as needed.
func Save(path string, cfg *Config) error {
	flat := make(map[string]any, len(cfg.Bools)+len(cfg.Modes))
	for k, v := range cfg.Bools {
		flat[k] = v
	}
	for k, v := range cfg.Modes {
		flat[k] = v
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(flat); err != nil {
		return fmt.Errorf("failed to marshal effects config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write effects config: %w", err)
	}
	return nil
}

// SetBool flips a boolean effect. Unknown names are an error.
func (c *Config) SetBool(name string, enabled bool) error {
	if _, ok := c.Bools[name]; !ok {
		return fmt.Errorf("unknown effect %q (boolean effects: %s)", name, keysList(c.Bools))
	}
	c.Bools[name] = enabled
	return nil
}

// SetMode sets a string-mode effect, validating the value.
func (c *Config) SetMode(name, value string) error {
	accepted, ok := ModeKeys[name]
	if !ok {
		return fmt.Errorf("unknown effect %q (mode effects: ambient_particles, click_sound)", name)
	}
	for _, v := range accepted {
		if v == value {
			c.Modes[name] = value
			return nil
		}
	}
	return fmt.Errorf("invalid value %q for %s (accepted: %v)", value, name, accepted)
}

func keysList(m map[string]bool) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += k
	}
	return out
}
