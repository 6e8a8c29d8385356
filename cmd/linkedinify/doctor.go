package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/alnah/go-linkedinify/internal/config"
	"github.com/alnah/go-linkedinify/internal/fileutil"
	"github.com/alnah/go-linkedinify/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Config   configInfo `json:"config"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// configInfo holds configuration resolution results.
type configInfo struct {
	Source  string `json:"source"` // file path, or "defaults"
	Profile string `json:"profile"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS        string   `json:"os"`
	Arch      string   `json:"arch"`
	Container bool     `json:"container"`
	CI        bool     `json:"ci"`
	Variables []string `json:"variables,omitempty"` // LINKEDINIFY_* names set
	DotEnv    bool     `json:"dotenv"`
}

// systemInfo holds system check results.
type systemInfo struct {
	OutputDir         string `json:"output_dir,omitempty"`
	OutputDirWritable bool   `json:"output_dir_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	configName := ""
	for i, arg := range args {
		switch {
		case arg == "--json":
			jsonOutput = true
		case (arg == "-c" || arg == "--config") && i+1 < len(args):
			configName = args[i+1]
		case strings.HasPrefix(arg, "--config="):
			configName = strings.TrimPrefix(arg, "--config=")
		}
	}

	result := runDoctor(configName, env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(configName string, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:     runtime.GOOS,
			Arch:   runtime.GOARCH,
			DotEnv: env.DotEnv != "" && fileutil.FileExists(env.DotEnv),
		},
	}

	cfg := checkConfig(result, configName, env)
	checkEnvironment(result)
	if cfg != nil {
		checkOutputDir(result, cfg.Output.DefaultDir)
	}

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConfig resolves and validates the configuration the way commands do.
func checkConfig(result *doctorResult, name string, env *Environment) *config.Config {
	envCfg := loadEnvConfig()
	if name == "" {
		name = envCfg.ConfigPath
	}

	result.Config.Source = "defaults"
	if name != "" {
		if fileutil.IsFilePath(name) {
			result.Config.Source = name
		} else {
			for _, p := range config.SearchPaths(name) {
				if fileutil.FileExists(p) {
					result.Config.Source = p
					break
				}
			}
		}
	}

	cfg, err := loadConfig(commonFlags{config: name}, envCfg, env)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return nil
	}
	result.Config.Profile = cfg.Profile
	return cfg
}

// checkEnvironment detects container and CI environments and lists the
// LINKEDINIFY_* variables in effect.
func checkEnvironment(result *doctorResult) {
	result.Env.Container = hints.IsInContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, envPrefix) {
			continue
		}
		result.Env.Variables = append(result.Env.Variables, name)
		if !knownEnvVars[name] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Unknown environment variable %s (typo?)", name))
		}
	}
}

// checkOutputDir verifies the configured output directory is writable.
// An empty directory means outputs go next to their sources.
func checkOutputDir(result *doctorResult, dir string) {
	result.System.OutputDir = dir
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, ".linkedinify-doctor-*")
	if err != nil {
		if os.IsNotExist(err) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Output directory %s does not exist yet (created on first convert)", dir))
			return
		}
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %s", dir))
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	result.System.OutputDirWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "linkedinify doctor")
	fmt.Fprintln(w)

	// Config section
	fmt.Fprintln(w, "Configuration")
	if r.Config.Profile != "" {
		fmt.Fprintf(w, "  [OK] Source: %s\n", r.Config.Source)
		fmt.Fprintf(w, "  [OK] Profile: %s\n", r.Config.Profile)
	} else {
		fmt.Fprintf(w, "  [ERROR] Source: %s\n", r.Config.Source)
	}
	fmt.Fprintln(w)

	// Environment section
	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintln(w, "  [OK] Container: detected")
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	if r.Env.DotEnv {
		fmt.Fprintln(w, "  [OK] .env: loaded")
	}
	for _, v := range r.Env.Variables {
		fmt.Fprintf(w, "  [OK] %s set\n", v)
	}
	fmt.Fprintln(w)

	// System section
	fmt.Fprintln(w, "System")
	dir := r.System.OutputDir
	if dir == "" {
		dir = "next to sources"
	}
	if r.System.OutputDirWritable {
		fmt.Fprintf(w, "  [OK] Output directory: %s (writable)\n", dir)
	} else {
		fmt.Fprintf(w, "  [--] Output directory: %s\n", dir)
	}
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
