// Package config loads the optional golox YAML configuration file and
// applies environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ServeConfig configures the playground server.
type ServeConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Config is the interpreter host configuration.
type Config struct {
	// Prompt is the REPL prompt string.
	Prompt string `yaml:"prompt"`

	// MaxCallDepth bounds the Lox call stack.
	MaxCallDepth int `yaml:"max_call_depth"`

	Serve ServeConfig `yaml:"serve"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Prompt:       "> ",
		MaxCallDepth: 1024,
		Serve: ServeConfig{
			Host: "0.0.0.0",
			Port: 8787,
		},
	}
}

// Load reads the configuration from path, falling back to defaults for
// unset fields. An empty path yields the defaults. HOST and PORT
// environment variables override the serve settings either way.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
		cfg.applyDefaults()
	}

	if host := os.Getenv("HOST"); host != "" {
		cfg.Serve.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return cfg, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Serve.Port = p
	}

	return cfg, nil
}

// applyDefaults fills fields the YAML file left zero-valued.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Prompt == "" {
		c.Prompt = def.Prompt
	}
	if c.MaxCallDepth <= 0 {
		c.MaxCallDepth = def.MaxCallDepth
	}
	if c.Serve.Host == "" {
		c.Serve.Host = def.Serve.Host
	}
	if c.Serve.Port <= 0 {
		c.Serve.Port = def.Serve.Port
	}
}
