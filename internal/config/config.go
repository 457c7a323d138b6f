// Package config loads and persists the editor's JSON configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrInvalidConfig indicates the configuration file is not valid JSON.
var ErrInvalidConfig = errors.New("config: invalid JSON")

// Config holds the editor settings the selection core and its host
// care about.
type Config struct {
	// EnableCrossBlockSelection gates the drag-selection engine.
	EnableCrossBlockSelection bool

	// ScrollAlign is how keyboard extension reveals blocks:
	// "nearest", "start" or "center".
	ScrollAlign string

	// SelectionColor is the highlight color as a hex string.
	SelectionColor string

	// SelectionBlend is how strongly the highlight tints the block
	// background, 0..1.
	SelectionBlend float64

	// PluginScripts are Lua scripts loaded at startup.
	PluginScripts []string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		EnableCrossBlockSelection: true,
		ScrollAlign:               "nearest",
		SelectionColor:            "#2e5090",
		SelectionBlend:            0.35,
	}
}

// Load reads a JSON configuration file, filling unset fields from the
// defaults. A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("%w: %s", ErrInvalidConfig, path)
	}

	if v := gjson.GetBytes(data, "selection.crossBlock"); v.Exists() {
		cfg.EnableCrossBlockSelection = v.Bool()
	}
	if v := gjson.GetBytes(data, "selection.scrollAlign"); v.Exists() {
		cfg.ScrollAlign = v.String()
	}
	if v := gjson.GetBytes(data, "theme.selectionColor"); v.Exists() {
		cfg.SelectionColor = v.String()
	}
	if v := gjson.GetBytes(data, "theme.selectionBlend"); v.Exists() {
		cfg.SelectionBlend = v.Float()
	}
	if v := gjson.GetBytes(data, "plugins.scripts"); v.IsArray() {
		for _, s := range v.Array() {
			cfg.PluginScripts = append(cfg.PluginScripts, s.String())
		}
	}

	return cfg, nil
}

// Save writes the configuration as JSON.
func (c Config) Save(path string) error {
	data := []byte("{}")
	var err error

	set := func(jsonPath string, value any) {
		if err != nil {
			return
		}
		data, err = sjson.SetBytes(data, jsonPath, value)
	}

	set("selection.crossBlock", c.EnableCrossBlockSelection)
	set("selection.scrollAlign", c.ScrollAlign)
	set("theme.selectionColor", c.SelectionColor)
	set("theme.selectionBlend", c.SelectionBlend)
	if len(c.PluginScripts) > 0 {
		set("plugins.scripts", c.PluginScripts)
	}
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
