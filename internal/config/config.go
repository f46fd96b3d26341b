// Package config loads pokerouts settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Output formats
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

const (
	defaultLogLevel  = "info"
	defaultThreshold = 10
	defaultFormat    = FormatText
)

// Config represents the complete configuration file
type Config struct {
	LogLevel string           `hcl:"log_level,optional"`
	Display  *DisplaySettings `hcl:"display,block"`
	Defaults *DefaultSettings `hcl:"defaults,block"`
}

// DisplaySettings controls how estimates are printed
type DisplaySettings struct {
	// Threshold is the percentage below which a rank is shown red and above
	// which it is shown green. Exactly equal is printed plain.
	Threshold *int   `hcl:"threshold,optional"`
	Format    string `hcl:"format,optional"`
	Color     *bool  `hcl:"color,optional"`
}

// DefaultSettings holds defaults for calculation flags
type DefaultSettings struct {
	AllIn bool `hcl:"all_in,optional"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	threshold := defaultThreshold
	color := true
	return &Config{
		LogLevel: defaultLogLevel,
		Display: &DisplaySettings{
			Threshold: &threshold,
			Format:    defaultFormat,
			Color:     &color,
		},
		Defaults: &DefaultSettings{},
	}
}

// Load reads configuration from an HCL file. A missing file yields DefaultConfig.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and backfills defaults for anything unset.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Display == nil {
		c.Display = def.Display
	}
	if c.Display.Threshold == nil {
		c.Display.Threshold = def.Display.Threshold
	}
	if c.Display.Format == "" {
		c.Display.Format = def.Display.Format
	}
	if c.Display.Color == nil {
		c.Display.Color = def.Display.Color
	}
	if c.Defaults == nil {
		c.Defaults = def.Defaults
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}
	switch c.Display.Format {
	case FormatText, FormatTable, FormatJSON:
	default:
		return fmt.Errorf("invalid display format: %q", c.Display.Format)
	}
	if t := c.ThresholdPercent(); t < 0 || t > 100 {
		return fmt.Errorf("invalid display threshold: %d", t)
	}
	return nil
}

// ThresholdPercent returns the colour threshold.
func (c *Config) ThresholdPercent() int {
	if c.Display == nil || c.Display.Threshold == nil {
		return defaultThreshold
	}
	return *c.Display.Threshold
}

// ColorEnabled reports whether coloured output is wanted.
func (c *Config) ColorEnabled() bool {
	if c.Display == nil || c.Display.Color == nil {
		return true
	}
	return *c.Display.Color
}
