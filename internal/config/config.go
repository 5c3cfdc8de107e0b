package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the ambient settings for the isccgen CLI and its demo HTTP
// server, plus the engine's own Options table. Load mirrors the teacher's
// config.Load: read config.yaml if present, then apply ISCC_* environment
// overrides, then validate.
type Config struct {
	Server  ServerConfig `yaml:"server"`
	Engine  Options      `yaml:"engine"`
	Remote  RemoteConfig `yaml:"remote"`
	LogJSON bool         `yaml:"log_json"`
}

// ServerConfig holds the demo HTTP API's listen settings.
type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxBodyMB    int64         `yaml:"max_body_mb"`
}

// RemoteConfig holds settings for the optional S3-backed byte source.
type RemoteConfig struct {
	Bucket       string `yaml:"bucket"`
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// Load reads configuration from config.yaml and environment variables.
func Load() (*Config, error) {
	cfg := Default()

	configPath := getEnv("ISCC_CONFIG_PATH", "config.yaml")
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", configPath, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return cfg, nil
}

// Default returns the engine defaults plus sensible ambient settings.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			MaxBodyMB:    256,
		},
		Engine: *DefaultOptions(),
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = ":" + v
	}
	if v := os.Getenv("ISCC_SERVER_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("ISCC_MAX_BODY_MB"); v != "" {
		c.Server.MaxBodyMB = int64(getEnvInt("ISCC_MAX_BODY_MB", int(c.Server.MaxBodyMB)))
	}
	if v := os.Getenv("ISCC_REMOTE_BUCKET"); v != "" {
		c.Remote.Bucket = v
	}
	if v := os.Getenv("ISCC_REMOTE_REGION"); v != "" {
		c.Remote.Region = v
	}
	if v := os.Getenv("ISCC_REMOTE_ENDPOINT"); v != "" {
		c.Remote.Endpoint = v
	}
	if v := os.Getenv("ISCC_LOG_JSON"); v != "" {
		c.LogJSON = v == "true" || v == "1"
	}
}

// Validate checks the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Engine.MinhashPermutations <= 0 {
		return fmt.Errorf("engine.minhash_permutations must be positive")
	}
	if c.Engine.CDCMinSize <= 0 || c.Engine.CDCMaxSize <= c.Engine.CDCMinSize {
		return fmt.Errorf("engine.cdc_min_size/cdc_max_size are inconsistent")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}
