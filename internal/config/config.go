package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

var ErrConfigNotFound = errors.New("no config file found")

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DurationConfig struct {
	Compact  bool `yaml:"compact"`
	MaxUnits int  `yaml:"max_units"`
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Duration DurationConfig `yaml:"duration"`
	Batch    BatchConfig    `yaml:"batch"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var c Config
	c.ensureDefaults()
	return &c
}

// Load loads configuration with the following priority:
// 1. User provided fpath (if provided and exists)
// 2. $XDG_CONFIG_HOME/whenwords/config.yaml or $HOME/.config/whenwords/config.yaml
// 3. /etc/whenwords/config.yaml
func Load(fpath string) (*Config, error) {
	configPath, err := findConfigFile(fpath)
	if err != nil {
		return nil, err
	}

	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	return parse(configBytes)
}

func parse(data []byte) (*Config, error) {
	var config Config
	if cerr := yaml.Unmarshal(data, &config); cerr != nil {
		return nil, fmt.Errorf("parsing config: %w", cerr)
	}

	config.ensureDefaults()

	if verr := config.validate(); verr != nil {
		return nil, verr
	}

	return &config, nil
}

func (c *Config) ensureDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}

	if c.Duration.MaxUnits == 0 {
		c.Duration.MaxUnits = 2
	}

	if c.Batch.Workers == 0 {
		c.Batch.Workers = 8
	}
}

func findConfigFile(userPath string) (string, error) {
	if userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return userPath, nil
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(configDir, "whenwords", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	path := "/etc/whenwords/config.yaml"
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	return "", ErrConfigNotFound
}
