package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/loopsim/internal/loop"
)

const (
	DefaultOutput = "loop.json"
	DefaultHost   = "0.0.0.0"
	DefaultPort   = 8000
)

type Config struct {
	Preset string          `yaml:"preset,omitempty"`
	Params loop.Parameters `yaml:"params"`
	Output string          `yaml:"output"`
	Server ServerConfig    `yaml:"server"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func DefaultConfig() *Config {
	return &Config{
		Params: loop.DefaultParameters(),
		Output: DefaultOutput,
		Server: ServerConfig{Host: DefaultHost, Port: DefaultPort},
	}
}

// Load reads a config file. Its preset, if any, is applied first and the
// file's params are laid over it.
func Load(path string) (*Config, error) {
	return LoadWithPreset(path, "")
}

// LoadWithPreset is Load with the base preset chosen by the caller. An empty
// preset falls back to the one named in the file. An empty path skips the
// file entirely.
func LoadWithPreset(path, preset string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	if preset == "" && len(data) > 0 {
		var head struct {
			Preset string `yaml:"preset"`
		}
		if err := yaml.Unmarshal(data, &head); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		preset = head.Preset
	}

	cfg := DefaultConfig()
	if preset != "" {
		p, err := GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg.Params = p.Params
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	cfg.Preset = preset
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
