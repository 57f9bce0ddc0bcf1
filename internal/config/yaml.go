package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadYAMLConfig load config from filename in YAML format. Sections the
// target struct does not declare are ignored, so several loaders can share
// one file.
func LoadYAMLConfig(filename string, cfg interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read config file: %v", err)
	}
	err = yaml.Unmarshal(data, cfg)
	return err
}

func InitConfig(configPath string) (*Config, error) {
	conf := DefaultConfig()

	if err := LoadYAMLConfig(configPath, conf); err != nil {
		return nil, err
	}
	// Hour-of-day bucketing depends on the zone; reject a bad name at
	// startup instead of on the first summary request.
	if _, err := conf.Location(); err != nil {
		return nil, fmt.Errorf("timezone: %v", err)
	}

	return conf, nil
}
