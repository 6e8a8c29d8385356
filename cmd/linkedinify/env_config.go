package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-linkedinify/internal/config"
	"github.com/alnah/go-linkedinify/internal/fileutil"
	"github.com/alnah/go-linkedinify/internal/logger"
)

// envPrefix is the prefix of every recognized environment variable.
const envPrefix = "LINKEDINIFY_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string   // LINKEDINIFY_CONFIG: config file name or path
	Profile        string   // LINKEDINIFY_PROFILE: linkedin, twitter
	InputDir       string   // LINKEDINIFY_INPUT_DIR: default input directory
	OutputDir      string   // LINKEDINIFY_OUTPUT_DIR: default output directory
	Extension      string   // LINKEDINIFY_EXTENSION: output extension
	MaxChars       int      // LINKEDINIFY_MAX_CHARS: character limit
	Addr           string   // LINKEDINIFY_ADDR: serve listen address
	AllowedOrigins []string // LINKEDINIFY_ALLOWED_ORIGINS: comma-separated CORS origins
	Workers        int      // LINKEDINIFY_WORKERS: parallel workers
	LogLevel       string   // LINKEDINIFY_LOG_LEVEL: debug, info, warn, error
	LogFormat      string   // LINKEDINIFY_LOG_FORMAT: console, json
}

// knownEnvVars lists valid LINKEDINIFY_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"LINKEDINIFY_CONFIG":          true,
	"LINKEDINIFY_PROFILE":         true,
	"LINKEDINIFY_INPUT_DIR":       true,
	"LINKEDINIFY_OUTPUT_DIR":      true,
	"LINKEDINIFY_EXTENSION":       true,
	"LINKEDINIFY_MAX_CHARS":       true,
	"LINKEDINIFY_ADDR":            true,
	"LINKEDINIFY_ALLOWED_ORIGINS": true,
	"LINKEDINIFY_WORKERS":         true,
	logger.EnvLevel:               true,
	logger.EnvFormat:              true,
}

// loadDotEnv loads env.DotEnv into the process environment when the file
// exists. Variables already set are not overridden.
func loadDotEnv(env *Environment) {
	if env.DotEnv == "" || !fileutil.FileExists(env.DotEnv) {
		return
	}
	if err := godotenv.Load(env.DotEnv); err != nil {
		fmt.Fprintf(env.Stderr, "warning: ignoring %s: %v\n", env.DotEnv, err)
	}
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers are ignored.
func loadEnvConfig() *envConfig {
	logOpts := logger.FromEnv()
	cfg := &envConfig{
		ConfigPath: os.Getenv("LINKEDINIFY_CONFIG"),
		Profile:    os.Getenv("LINKEDINIFY_PROFILE"),
		InputDir:   os.Getenv("LINKEDINIFY_INPUT_DIR"),
		OutputDir:  os.Getenv("LINKEDINIFY_OUTPUT_DIR"),
		Extension:  os.Getenv("LINKEDINIFY_EXTENSION"),
		Addr:       os.Getenv("LINKEDINIFY_ADDR"),
		LogLevel:   logOpts.Level,
		LogFormat:  logOpts.Format,
	}

	if origins := os.Getenv("LINKEDINIFY_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if v := os.Getenv("LINKEDINIFY_MAX_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxChars = n
		}
	}

	if v := os.Getenv("LINKEDINIFY_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized LINKEDINIFY_* variables.
// Helps catch typos like LINKEDINIFY_PROFIL.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable overrides the config file; CLI flags are merged later, so
// the precedence is: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Profile != "" {
		cfg.Profile = env.Profile
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Extension != "" {
		cfg.Output.Extension = env.Extension
	}
	if env.MaxChars > 0 {
		maxChars := env.MaxChars
		cfg.Limits.MaxChars = &maxChars
	}
	if env.Addr != "" {
		cfg.Server.Addr = env.Addr
	}
	if len(env.AllowedOrigins) > 0 {
		cfg.Server.AllowedOrigins = env.AllowedOrigins
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
}
