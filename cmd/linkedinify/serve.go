package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-linkedinify"
	"github.com/alnah/go-linkedinify/internal/hints"
	"github.com/alnah/go-linkedinify/internal/server"
)

// runServe runs the HTTP service until ctx is cancelled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: serve takes no arguments", ErrUsage)
	}

	cfg, err := loadConfig(flags.common, loadEnvConfig(), env)
	if err != nil {
		return err
	}
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}
	if flags.profile != "" {
		cfg.Profile = flags.profile
	}

	profile, err := linkedinify.ParseProfile(cfg.Profile)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForUnknownProfile(profileNames()))
	}

	log := newLogger(cfg, flags.common, env.Stderr)
	configureMaxProcs(log)

	srv := server.New(server.Options{
		Logger:         log.With().Str("component", "http").Logger(),
		Profile:        profile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Version:        env.Version,
		LimitsFor: func(p linkedinify.Profile) linkedinify.Limits {
			return cfg.Limits.ToLimits(p.Limits())
		},
	})

	if err := srv.Run(ctx, cfg.Server.Addr); err != nil {
		return fmt.Errorf("serving on %s: %w%s", cfg.Server.Addr, err, hints.ForListen(cfg.Server.Addr))
	}
	return nil
}
