package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nilesh-iiita/hiveplot/pkg/pipeline"
)

// Config holds user preferences loaded from the config file.
// All fields are optional; zeros fall back to pipeline defaults.
type Config struct {
	// Scale is the default axis scale factor.
	Scale float64 `toml:"scale"`

	// Style is the default visual style ("simple" or "ink").
	Style string `toml:"style"`

	// Labels controls whether node labels are drawn by default.
	Labels bool `toml:"labels"`

	// Server holds defaults for the serve command.
	Server ServerConfig `toml:"server"`
}

// ServerConfig holds serve command defaults.
type ServerConfig struct {
	Addr         string `toml:"addr"`
	CacheBackend string `toml:"cache_backend"` // file, redis, mongo, none
	RedisAddr    string `toml:"redis_addr"`
	RedisDB      int    `toml:"redis_db"`
	MongoURI     string `toml:"mongo_uri"`
	MongoDB      string `toml:"mongo_db"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Scale: pipeline.DefaultScale,
		Style: pipeline.DefaultStyle,
		Server: ServerConfig{
			Addr:         ":8080",
			CacheBackend: "file",
			RedisAddr:    "localhost:6379",
			MongoURI:     "mongodb://localhost:27017",
			MongoDB:      appName,
		},
	}
}

// configPath returns the config file location using the XDG standard
// (~/.config/hiveplot/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads the config file, merging its values over the defaults.
// A missing file is not an error and returns the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

