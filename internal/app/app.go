package app

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CfgRedis         ConfigRedis   `yaml:"redis"`
	CfgKafka         ConfigKafka   `yaml:"kafka"`
	ServerPort       string        `yaml:"srv_port"`
	AllowedOrigin    string        `yaml:"allowed_origin"`
	StoreTimeout     time.Duration `yaml:"store_timeout"`
	StoreMaxAttempts int           `yaml:"store_max_attempts"`
	StoreBackoffBase time.Duration `yaml:"store_backoff_base"`
}

type ConfigRedis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ConfigKafka struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
