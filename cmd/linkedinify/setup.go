package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-linkedinify"
	"github.com/alnah/go-linkedinify/internal/config"
	"github.com/alnah/go-linkedinify/internal/hints"
	"github.com/alnah/go-linkedinify/internal/logger"
)

// loadConfig resolves the command configuration:
// --config (or LINKEDINIFY_CONFIG) file over defaults, then env overrides.
// The result is stored in env.Config.
func loadConfig(flags commonFlags, envCfg *envConfig, env *Environment) (*config.Config, error) {
	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			hint := ""
			if errors.Is(err, config.ErrConfigNotFound) {
				hint = hints.ForConfigNotFound(config.SearchPaths(name))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
	}

	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	env.Config = cfg
	return cfg, nil
}

// newLogger builds the diagnostic logger. --verbose forces debug and
// --quiet forces error level.
func newLogger(cfg *config.Config, flags commonFlags, w io.Writer) zerolog.Logger {
	level := cfg.Log.Level
	switch {
	case flags.verbose:
		level = "debug"
	case flags.quiet:
		level = "error"
	}
	return logger.New(logger.Options{
		Level:  level,
		Format: cfg.Log.Format,
		Writer: w,
	})
}

// transcoderSet holds one transcoder per profile, all sharing the
// configured limit overrides.
type transcoderSet struct {
	byProfile map[linkedinify.Profile]*linkedinify.Transcoder
	fallback  linkedinify.Profile
}

// newTranscoderSet creates transcoders for every profile. fallback is used
// when a post names no profile.
func newTranscoderSet(cfg *config.Config, log zerolog.Logger) (*transcoderSet, error) {
	fallback, err := linkedinify.ParseProfile(cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForUnknownProfile(profileNames()))
	}

	set := &transcoderSet{
		byProfile: make(map[linkedinify.Profile]*linkedinify.Transcoder),
		fallback:  fallback,
	}
	for _, p := range linkedinify.Profiles() {
		set.byProfile[p] = linkedinify.NewTranscoder(
			linkedinify.WithProfile(p),
			linkedinify.WithLimits(cfg.Limits.ToLimits(p.Limits())),
			linkedinify.WithLogger(log),
		)
	}
	return set, nil
}

// get resolves a profile name; an empty name yields the fallback.
func (s *transcoderSet) get(name string) (*linkedinify.Transcoder, error) {
	if name == "" {
		return s.byProfile[s.fallback], nil
	}
	p, err := linkedinify.ParseProfile(name)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForUnknownProfile(profileNames()))
	}
	return s.byProfile[p], nil
}

// profileNames lists the profiles as strings.
func profileNames() []string {
	profiles := linkedinify.Profiles()
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = string(p)
	}
	return names
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(log zerolog.Logger) {
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug().Msgf(format, args...)
	}))
}

// resolveWorkers returns the worker count for n jobs: the requested count,
// or GOMAXPROCS when zero, never more than n.
func resolveWorkers(requested, n int) int {
	workers := requested
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// usageError marks flag parsing failures as usage errors.
// pflag.ErrHelp stays matchable through the wrap.
func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}
