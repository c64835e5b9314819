/*
Package config manages the TOML config for wordfreq.

Config is resolved in this order:

 1. path given with the -config flag
 2. [UserConfigDir]/wordfreq/config.toml (created with defaults when missing)
 3. builtin defaults

A file with syntax errors is not fatal: every section that can still be read is
applied on top of the defaults.
*/
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// FileName is the name of the config file inside the config dir.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has HTTP server options.
type ServerConfig struct {
	Addr                   string `toml:"addr"`
	MaxBodyBytes           int    `toml:"max_body_bytes"`
	ReadTimeoutSeconds     int    `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds    int    `toml:"write_timeout_seconds"`
	ShutdownTimeoutSeconds int    `toml:"shutdown_timeout_seconds"`
	EnableMetrics          bool   `toml:"enable_metrics"`
}

// LogConfig controls the charm logger.
type LogConfig struct {
	Level     string `toml:"level"`
	Formatter string `toml:"formatter"`
	Timestamp bool   `toml:"timestamp"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// ReadTimeout returns the read timeout as a duration.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns how long a graceful shutdown may take.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                   ":8080",
			MaxBodyBytes:           1 << 20,
			ReadTimeoutSeconds:     10,
			WriteTimeoutSeconds:    10,
			ShutdownTimeoutSeconds: 5,
			EnableMetrics:          true,
		},
		Log: LogConfig{
			Level:     "info",
			Formatter: "text",
			Timestamp: true,
		},
		CLI: CliConfig{
			DefaultLimit: 10,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. [UserConfigDir]/wordfreq
// 2. ~/.config/wordfreq
// 3. Current executable dir
func GetConfigDir() (string, error) {
	if userDir, err := os.UserConfigDir(); err == nil {
		primaryPath := filepath.Join(userDir, "wordfreq")
		result := checkDirStatus(primaryPath)
		if result.Writable {
			return primaryPath, nil
		}
		log.Debugf("Config dir %s not usable: %v", primaryPath, result.Error)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		fallback := filepath.Join(homeDir, ".config", "wordfreq")
		result := checkDirStatus(fallback)
		if result.Writable {
			return fallback, nil
		}
		log.Debugf("Config dir %s not usable: %v", fallback, result.Error)
	}
	execDir, err := executableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FileName), nil
}

// LoadConfigWithPriority loads config from customConfigPath when it is set and
// readable, then from the default path, then falls back to builtin defaults.
// It returns the path the config came from ("" for builtin defaults).
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !fileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := decodeFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse applies whatever sections of a broken file still decode.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := decodeRaw(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := extractSection(raw, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := extractSection(raw, "log"); ok {
		extractLogConfig(section, &config.Log)
	}
	if section, ok := extractSection(raw, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := extractString(data, "addr"); ok {
		server.Addr = val
	}
	if val, ok := extractInt(data, "max_body_bytes"); ok {
		server.MaxBodyBytes = val
	}
	if val, ok := extractInt(data, "read_timeout_seconds"); ok {
		server.ReadTimeoutSeconds = val
	}
	if val, ok := extractInt(data, "write_timeout_seconds"); ok {
		server.WriteTimeoutSeconds = val
	}
	if val, ok := extractInt(data, "shutdown_timeout_seconds"); ok {
		server.ShutdownTimeoutSeconds = val
	}
	if val, ok := extractBool(data, "enable_metrics"); ok {
		server.EnableMetrics = val
	}
}

func extractLogConfig(data map[string]any, l *LogConfig) {
	if val, ok := extractString(data, "level"); ok {
		l.Level = val
	}
	if val, ok := extractString(data, "formatter"); ok {
		l.Formatter = val
	}
	if val, ok := extractBool(data, "timestamp"); ok {
		l.Timestamp = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := extractInt(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return encodeFile(config, configPath)
}

// RebuildConfigFile force creates a new config.toml at the default path.
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(defaultPath), 0o755); err != nil {
		return err
	}
	return SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of the loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	if !filepath.IsAbs(configPath) {
		if absPath, err := filepath.Abs(configPath); err == nil {
			return absPath
		}
	}
	return configPath
}
