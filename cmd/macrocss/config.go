package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/macrocss/macrocss"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".macrocss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// Environment variables (MACROCSS_* prefix)
	if err := k.Load(env.Provider("MACROCSS_", ".", func(s string) string {
		// MACROCSS_BUILD_OUTPUT -> build.output
		// MACROCSS_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "MACROCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig is the resolved configuration of the build command.
type buildConfig struct {
	Paths       []string
	Output      string
	Cache       string
	Minimize    bool
	Mangle      bool
	Check       bool
	Scope       string
	Screens     []macrocss.Screen
	Variables   map[string]string
	Components  map[string][]string
	Pregenerate []string
	Verbose     bool
	Quiet       bool
	Color       bool
}

// resolveBuildConfig constructs the build configuration from koanf state.
func resolveBuildConfig() (buildConfig, error) {
	cfg := buildConfig{
		Output:   getStringWithFallback("output", "build.output", ""),
		Cache:    getStringWithFallback("cache", "build.cache", ""),
		Minimize: getBoolWithFallback("minimize", "build.minimize", false),
		Mangle:   getBoolWithFallback("mangle", "build.mangle", false),
		Check:    getBoolWithFallback("check", "build.check", false),
		Scope:    getStringWithFallback("scope", "build.scope", ""),
		Verbose:  getBoolWithFallback("verbose", "verbose", false),
		Quiet:    getBoolWithFallback("quiet", "quiet", false),
		Color:    getBoolWithFallback("color", "color", false),
	}

	if paths := k.Strings("paths"); len(paths) > 0 {
		cfg.Paths = paths
	} else if paths := k.Strings("build.paths"); len(paths) > 0 {
		cfg.Paths = paths
	} else {
		cfg.Paths = []string{"**/*.html", "**/*.templ", "**/*.tmpl"}
	}

	screens, err := parseScreens(getStringsWithFallback("screen", "screens"))
	if err != nil {
		return cfg, err
	}
	cfg.Screens = screens

	cfg.Variables = k.StringMap("variables")
	cfg.Components = make(map[string][]string)
	for alias, chain := range k.StringMap("components") {
		cfg.Components[alias] = []string{chain}
	}
	cfg.Pregenerate = k.Strings("pregenerate")

	return cfg, nil
}

// parseScreens parses ordered "name=media query" entries:
//
//	screens:
//	  - "sm=(min-width: 640px)"
//	  - "md=(min-width: 768px)"
func parseScreens(entries []string) ([]macrocss.Screen, error) {
	screens := make([]macrocss.Screen, 0, len(entries))
	for _, entry := range entries {
		name, query, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid screen entry %q: want name=media-query", entry)
		}
		screens = append(screens, macrocss.Screen{
			Name:       strings.TrimSpace(name),
			MediaQuery: strings.TrimSpace(query),
		})
	}
	return screens, nil
}

// getStringWithFallback checks the flag key first, then the config file key,
// then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key,
// then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key.
func getStringsWithFallback(flagKey, configKey string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	return k.Strings(configKey)
}
