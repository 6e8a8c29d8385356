package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-linkedinify"
	"github.com/alnah/go-linkedinify/internal/fileutil"
	"github.com/alnah/go-linkedinify/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-linkedinify"

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxExtensionLength = 32
	MaxAddrLength      = 255
	MaxOriginLength    = 2048 // Browser URL limit
)

// Default values.
const (
	DefaultExtension    = ".linkedin.txt"
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 1 << 20
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

// Config holds all configuration for transcoding, serving and logging.
type Config struct {
	Profile string       `yaml:"profile"` // "linkedin", "twitter" (default: "linkedin")
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Limits  LimitsConfig `yaml:"limits"`
	Server  ServerConfig `yaml:"server"`
	Log     LogConfig    `yaml:"log"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the source file
	Extension  string `yaml:"extension"`  // Appended to the source base name
}

// LimitsConfig overrides the limits of every profile. A nil field keeps the
// profile's own limit; zero disables the check.
type LimitsConfig struct {
	MaxChars    *int `yaml:"maxChars"`
	MaxHashtags *int `yaml:"maxHashtags"`
	MaxMentions *int `yaml:"maxMentions"`
}

// ServerConfig defines HTTP service options.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowedOrigins"` // Empty = CORS disabled
	MaxBodyBytes   int64    `yaml:"maxBodyBytes"`
}

// LogConfig defines diagnostic logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "console", "json"
}

// ToLimits applies the overrides to base, usually Profile.Limits().
func (l LimitsConfig) ToLimits(base linkedinify.Limits) linkedinify.Limits {
	if l.MaxChars != nil {
		base.MaxChars = *l.MaxChars
	}
	if l.MaxHashtags != nil {
		base.MaxHashtags = *l.MaxHashtags
	}
	if l.MaxMentions != nil {
		base.MaxMentions = *l.MaxMentions
	}
	return base
}

// Validate checks values and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if _, err := linkedinify.ParseProfile(c.Profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	// Validate paths
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.extension", c.Output.Extension, MaxExtensionLength); err != nil {
		return err
	}
	if c.Output.Extension != "" {
		if err := fileutil.ValidateExtension(c.Output.Extension); err != nil {
			return fmt.Errorf("output.extension: %w", err)
		}
	}

	// Validate limits
	limits := []struct {
		name  string
		value *int
	}{
		{"limits.maxChars", c.Limits.MaxChars},
		{"limits.maxHashtags", c.Limits.MaxHashtags},
		{"limits.maxMentions", c.Limits.MaxMentions},
	}
	for _, l := range limits {
		if l.value != nil && *l.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidValue, l.name, *l.value)
		}
	}

	// Validate server fields
	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}
	for i, origin := range c.Server.AllowedOrigins {
		if err := validateFieldLength(fmt.Sprintf("server.allowedOrigins[%d]", i), origin, MaxOriginLength); err != nil {
			return err
		}
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: server.maxBodyBytes must not be negative, got %d", ErrInvalidValue, c.Server.MaxBodyBytes)
	}

	// Validate log fields
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q (must be console or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the LinkedIn configuration with profile limits.
func DefaultConfig() *Config {
	return &Config{
		Profile: string(linkedinify.DefaultProfile),
		Output:  OutputConfig{Extension: DefaultExtension},
		Server:  ServerConfig{Addr: DefaultAddr, MaxBodyBytes: DefaultMaxBodyBytes},
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
// Keys missing from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in order:
// ./name.yaml, ./name.yml, then the same names under the user config
// directory (e.g. ~/.config/go-linkedinify/).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
