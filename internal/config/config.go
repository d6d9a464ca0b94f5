package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTopic = "lru"
	DefaultSpeed = 50
	DefaultBase  = "https://algowalk.dev"
)

type Config struct {
	Topic string     `yaml:"topic"`
	Speed int        `yaml:"speed"`
	Step  int        `yaml:"step"`
	Base  string     `yaml:"base"`
	Quiz  QuizConfig `yaml:"quiz"`
}

type QuizConfig struct {
	Shuffle          bool `yaml:"shuffle"`
	TimeLimitSeconds int  `yaml:"time_limit_seconds"`
}

func DefaultConfig() *Config {
	return &Config{
		Topic: DefaultTopic,
		Speed: DefaultSpeed,
		Base:  DefaultBase,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
