// internal/config/file.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"hex-mockup/pkg/hexmap"
)

// Config holds the runtime settings, seeded from the compiled-in defaults.
type Config struct {
	Window   WindowConfig      `yaml:"window"`
	Grid     GridConfig        `yaml:"grid"`
	Seed     int64             `yaml:"seed"` // 0 — от текущего времени
	Colors   map[string]string `yaml:"terrain_colors"`
	LogLevel string            `yaml:"log_level"`
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	PanelWidth int    `yaml:"panel_width"`
	Title      string `yaml:"title"`
}

// GridConfig holds the five numeric constants of the hex layout.
type GridConfig struct {
	HexSize float64 `yaml:"hex_size"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
}

var ErrInvalid = errors.New("invalid config")

// Default returns the built-in configuration.
func Default() *Config {
	colors := make(map[string]string, len(TerrainColors))
	for k, v := range TerrainColors {
		colors[k] = v
	}
	return &Config{
		Window: WindowConfig{
			Width:      ScreenWidth,
			Height:     ScreenHeight,
			PanelWidth: PanelWidth,
			Title:      "Hex Grid 4X",
		},
		Grid: GridConfig{
			HexSize: HexSize,
			Width:   GridWidth,
			Height:  GridHeight,
			CenterX: CenterX,
			CenterY: CenterY,
		},
		Colors:   colors,
		LogLevel: "info",
	}
}

// Load reads configuration from a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result. Keys
// absent from the document keep their default values; terrain_colors entries
// are merged into the default table.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on settings the grid builder or renderer cannot use.
func (c *Config) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("%w: grid %dx%d has a negative dimension", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"hex_size", c.Grid.HexSize},
		{"center_x", c.Grid.CenterX},
		{"center_y", c.Grid.CenterY},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalid, f.name, f.v)
		}
	}
	if c.Grid.HexSize <= 0 {
		return fmt.Errorf("%w: hex_size must be positive, got %v", ErrInvalid, c.Grid.HexSize)
	}
	if c.Window.Width <= c.Window.PanelWidth || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d leaves no room for the map next to a %d px panel",
			ErrInvalid, c.Window.Width, c.Window.Height, c.Window.PanelWidth)
	}
	for name, hex := range c.Colors {
		if _, err := hexmap.ParseTerrain(name); err != nil {
			return fmt.Errorf("%w: terrain_colors: %v", ErrInvalid, err)
		}
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("%w: terrain_colors.%s: %v", ErrInvalid, name, err)
		}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Layout returns the screen-space constants for the hex mapper.
func (c *Config) Layout() hexmap.Layout {
	return hexmap.Layout{
		CenterX: c.Grid.CenterX,
		CenterY: c.Grid.CenterY,
		HexSize: c.Grid.HexSize,
	}
}

// CanvasSize splits an outside window size into the map canvas and the panel,
// like the original's innerWidth - panel. The window never shrinks below the
// panel plus one pixel of canvas.
func (c *Config) CanvasSize(outsideWidth, outsideHeight int) (width, height, canvasWidth int) {
	width = max(outsideWidth, c.Window.PanelWidth+1)
	height = max(outsideHeight, 1)
	return width, height, width - c.Window.PanelWidth
}

// TerrainPalette resolves the color table into a per-terrain slice. Terrains
// missing from the table get UnknownColor.
func (c *Config) TerrainPalette() []color.RGBA {
	palette := make([]color.RGBA, len(hexmap.Terrains))
	for _, t := range hexmap.Terrains {
		palette[t] = UnknownColor
		if hex, ok := c.Colors[t.String()]; ok {
			if clr, err := ParseHexColor(hex); err == nil {
				palette[t] = clr
			}
		}
	}
	return palette
}

// ParseHexColor parses "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
