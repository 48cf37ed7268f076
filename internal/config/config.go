// Package config resolves the tool settings from built-in defaults, an
// optional config file named on the command line, and command-line flags.
//
// Environment variables are not consulted.
package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"
)

// Setting keys
const (
	KeyCMakeVersion    = "cmake.minimum_version"
	KeyUnixCompiler    = "compiler.unix"
	KeyWindowsCompiler = "compiler.windows"
	KeyDryRun          = "dry_run"
	KeyVerbose         = "verbose"
)

// Defaults
const (
	DefaultCMakeVersion    = "3.25"
	DefaultUnixCompiler    = "gcc"
	DefaultWindowsCompiler = "msvc"
)

// minimumCMake is the oldest CMake that reads presets schema version 6.
var minimumCMake = semver.MustParse("3.25.0")

// Config holds the resolved settings for one invocation.
type Config struct {
	CMakeVersion    *semver.Version
	UnixCompiler    string
	WindowsCompiler string
	DryRun          bool
	Verbose         bool
}

// New returns a viper instance with every default registered.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyCMakeVersion, DefaultCMakeVersion)
	v.SetDefault(KeyUnixCompiler, DefaultUnixCompiler)
	v.SetDefault(KeyWindowsCompiler, DefaultWindowsCompiler)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyVerbose, false)
	return v
}

// Load reads configFile (when non-empty) into v and resolves the settings.
// Flags must already be bound to v.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	version, err := ParseCMakeVersion(v.GetString(KeyCMakeVersion))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CMakeVersion:    version,
		UnixCompiler:    strings.TrimSpace(v.GetString(KeyUnixCompiler)),
		WindowsCompiler: strings.TrimSpace(v.GetString(KeyWindowsCompiler)),
		DryRun:          v.GetBool(KeyDryRun),
		Verbose:         v.GetBool(KeyVerbose),
	}

	if cfg.UnixCompiler == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyUnixCompiler)
	}
	if cfg.WindowsCompiler == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyWindowsCompiler)
	}

	return cfg, nil
}

// ParseCMakeVersion parses a CMake version ("3.28", "v3.28.1") and rejects
// versions older than 3.25.
func ParseCMakeVersion(s string) (*semver.Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	version, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid CMake version %q: %w", s, err)
	}
	if version.Prerelease() != "" || version.Metadata() != "" {
		return nil, fmt.Errorf("invalid CMake version %q: pre-release and build metadata are not supported", s)
	}
	if version.LessThan(minimumCMake) {
		return nil, fmt.Errorf("CMake version %s is too old: presets need at least %s", version, minimumCMake)
	}
	return version, nil
}

// CMakeVersionString formats v the way cmake_minimum_required expects,
// dropping a zero patch component.
func CMakeVersionString(v *semver.Version) string {
	if v.Patch() == 0 {
		return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
	}
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
