package config

import (
	"time"
)

// PipelineConfig points at the external behavior-recognition API the
// dashboard reads from.
type PipelineConfig struct {
	BaseURL string `yaml:"baseURL"`
	APIKey  string `yaml:"apiKey"`
	Timeout int    `yaml:"timeout"` // seconds
}

// CacheConfig controls the local query cache. An empty path selects
// Badger's in-memory mode.
type CacheConfig struct {
	Path string `yaml:"path"`
	TTL  int    `yaml:"ttl"` // seconds
}

type S3Config struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	UseSSL          bool   `yaml:"useSSL"`
	Region          string `yaml:"region"`
	PresignExpiry   int    `yaml:"presignExpiry"` // seconds
}

// DemoUser is a login stub credential. There is no user store.
type DemoUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type ChatConfig struct {
	ReplyTemplate string `yaml:"replyTemplate"`
}

// InfluxDBConfig enables the optional live trend store. The consumer
// writes one point per live event; the trends API queries them back.
type InfluxDBConfig struct {
	URL     string `yaml:"url"`
	Org     string `yaml:"org"`
	Bucket  string `yaml:"bucket"`
	Token   string `yaml:"token"`
	Enabled bool   `yaml:"enabled"`
}

type Config struct {
	Addr      string         `yaml:"addr"`
	SSLCert   string         `yaml:"sslCert"`
	SSLKey    string         `yaml:"sslKey"`
	JwtSecret string         `yaml:"jwtSecret"`
	Timezone  string         `yaml:"timezone"`
	Pipeline  PipelineConfig `yaml:"pipeline"`
	Cache     CacheConfig    `yaml:"cache"`
	S3        S3Config       `yaml:"s3"`
	InfluxDB  InfluxDBConfig `yaml:"influxdb"`
	Users     []DemoUser     `yaml:"users"`
	Chat      ChatConfig     `yaml:"chat"`
}

// Location resolves the configured IANA zone used for hour-of-day
// bucketing. One zone per deployment.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

func DefaultConfig() *Config {
	return &Config{
		Addr:     "127.0.0.1:8080",
		Timezone: "UTC",
		Pipeline: PipelineConfig{
			BaseURL: "http://127.0.0.1:8000",
			Timeout: 30,
		},
		Cache: CacheConfig{
			Path: "",
			TTL:  600,
		},
		S3: S3Config{
			Endpoint:      "127.0.0.1:9000",
			UseSSL:        false,
			Region:        "us-east-1",
			PresignExpiry: 3600,
		},
		InfluxDB: InfluxDBConfig{
			URL:     "http://127.0.0.1:8086",
			Org:     "ethograph",
			Bucket:  "ethograph",
			Token:   "",
			Enabled: false,
		},
		Users: []DemoUser{
			{Username: "researcher", Password: "ethograph"},
		},
		Chat: ChatConfig{
			ReplyTemplate: "Between {{.StartDate}} and {{.EndDate}}, {{.AnimalId}} logged " +
				"{{.TotalEvents}} events over {{.TotalSeconds}} monitored seconds. " +
				"The most frequent behavior was {{.MostFrequent}}.",
		},
	}
}
