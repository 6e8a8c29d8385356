package main

import (
	"io"
	"os"

	"github.com/alnah/go-linkedinify/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	DotEnv  string         // path of the .env file, empty disables loading
	Config  *config.Config // set by loadConfig, shared by a command
	Version string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		DotEnv:  ".env",
		Config:  config.DefaultConfig(),
		Version: Version,
	}
}
