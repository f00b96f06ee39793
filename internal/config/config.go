package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort        = "8080"
	DefaultTempDir     = "./temp"
	DefaultMaxFileSize = 10 * 1024 * 1024
)

// defaultOrigins covers the hosts a local frontend is served from.
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://localhost",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1",
}

type Config struct {
	Port           string   `yaml:"port"`
	TempDir        string   `yaml:"temp_dir"`
	MaxFileSize    int64    `yaml:"max_file_size"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads an optional YAML config file, applies environment overrides
// (PORT, TEMP_DIR, MAX_FILE_SIZE, ALLOWED_ORIGINS) and fills defaults. An
// empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("TEMP_DIR"); v != "" {
		cfg.TempDir = v
	}
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxFileSize = n
		}
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.TempDir == "" {
		cfg.TempDir = DefaultTempDir
	}
	if cfg.MaxFileSize == 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = defaultOrigins
	}

	return cfg, nil
}
