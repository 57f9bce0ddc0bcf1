package consumer

import (
	"ethograph/internal/config"
)

type NSQConfig struct {
	Enabled   bool     `yaml:"enabled"`
	NSQDAddrs []string `yaml:"nsqdAddrs"`
	Topic     string   `yaml:"topic"`
	Channel   string   `yaml:"channel"`
}

type Config struct {
	NSQ      NSQConfig             `yaml:"nsq"`
	FeedSize int                   `yaml:"feedSize"`
	InfluxDB config.InfluxDBConfig `yaml:"influxdb"`
}

func DefaultConfig() *Config {
	return &Config{
		NSQ: NSQConfig{
			Enabled:   false,
			NSQDAddrs: []string{"localhost:4150"},
			Topic:     "behaviour_events",
			Channel:   "ethograph",
		},
		FeedSize: 256,
		InfluxDB: config.InfluxDBConfig{
			URL:     "http://127.0.0.1:8086",
			Org:     "ethograph",
			Bucket:  "ethograph",
			Enabled: false,
		},
	}
}

func LoadConfig(configPath string) (*Config, error) {
	conf := DefaultConfig()
	if err := config.LoadYAMLConfig(configPath, conf); err != nil {
		return nil, err
	}
	return conf, nil
}
