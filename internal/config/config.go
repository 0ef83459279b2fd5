package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the asset locations used by the CLI.
type Config struct {
	Favicon FaviconConfig `yaml:"favicon"`
	Logo    LogoConfig    `yaml:"logo"`
}

type FaviconConfig struct {
	Output string `yaml:"output"`
}

type LogoConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Size   int    `yaml:"size"` // 0 keeps the squared size
}

// Default returns the locations used by the site when no config file is given.
func Default() *Config {
	return &Config{
		Favicon: FaviconConfig{
			Output: "public/favicon.ico",
		},
		Logo: LogoConfig{
			Input:  "actransit.png",
			Output: "public/images/actransit.png",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks that every location is set and has the right extension.
func (c *Config) Validate() error {
	if c.Favicon.Output == "" {
		return fmt.Errorf("favicon.output is required")
	}
	if !hasExt(c.Favicon.Output, ".ico") {
		return fmt.Errorf("favicon.output must end in .ico, got %q", c.Favicon.Output)
	}
	if c.Logo.Input == "" {
		return fmt.Errorf("logo.input is required")
	}
	if c.Logo.Output == "" {
		return fmt.Errorf("logo.output is required")
	}
	if !hasExt(c.Logo.Output, ".png") {
		return fmt.Errorf("logo.output must end in .png, got %q", c.Logo.Output)
	}
	if c.Logo.Size < 0 {
		return fmt.Errorf("logo.size must not be negative, got %d", c.Logo.Size)
	}
	return nil
}

func hasExt(path, ext string) bool {
	return strings.HasSuffix(strings.ToLower(path), ext)
}
