package main

import (
	"fmt"
	"os"

	"github.com/macrocss/macrocss"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile utility macro tokens in project files into a stylesheet",
	Long: `Scan files matching the configured glob patterns for utility macro
tokens and compile them into one stylesheet. With a cache file configured,
compilation state survives between runs and mangled selectors stay stable.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for files to scan")
	f.StringP("output", "o", "", "Output CSS file (default: stdout)")
	f.String("cache", "", "Snapshot cache file for incremental builds")
	f.Bool("minimize", false, "Strip optional whitespace from output")
	f.Bool("mangle", false, "Mangle selectors to short identifiers")
	f.Bool("check", false, "Validate generated CSS structure")
	f.String("scope", "", "Selector prefix applied to all output")
	f.StringSlice("screen", nil, "Breakpoints as name=media-query, in order")
	f.StringSlice("pregenerate", nil, "Tokens compiled even when absent from content")
}

func runBuild(_ *cobra.Command, _ []string) error {
	cfg, err := resolveBuildConfig()
	if err != nil {
		return err
	}

	compiler, err := macrocss.New(macrocss.Config{
		Macros:      macrocss.DefaultMacros(),
		Variables:   cfg.Variables,
		Components:  cfg.Components,
		Screens:     cfg.Screens,
		Scope:       cfg.Scope,
		Pregenerate: cfg.Pregenerate,
	})
	if err != nil {
		return err
	}

	result, err := loadCachedResult(cfg, compiler)
	if err != nil {
		return err
	}

	files, stats, err := expandGlobPatterns(cfg.Paths)
	if err != nil {
		return fmt.Errorf("expanding scan paths: %w", err)
	}
	if cfg.Verbose && !cfg.Quiet {
		fmt.Printf("Scanning %d files (%d skipped)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	for _, path := range files {
		// #nosec G304 - paths come from user-configured glob patterns
		content, err := os.ReadFile(path)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("skipped %s: %v", path, err))
			continue
		}
		result, err = compiler.Compile(string(content), result)
		if err != nil {
			return fmt.Errorf("compiling %s: %w", path, err)
		}
	}

	css := result.GenerateCss(macrocss.RenderOptions{
		Minimize:        cfg.Minimize,
		MangleSelectors: cfg.Mangle,
	})

	if cfg.Check {
		if err := macrocss.ValidateCss(css); err != nil {
			return fmt.Errorf("generated CSS failed validation: %w", err)
		}
	}

	if err := writeOutput(cfg, css); err != nil {
		return err
	}
	if err := saveCachedResult(cfg, result); err != nil {
		return err
	}

	if !cfg.Quiet && cfg.Output != "" {
		fmt.Printf("%s %s (%s records)\n",
			renderStyle(styleGreen, "Wrote", cfg.Color),
			cfg.Output,
			renderStyle(styleCyan, fmt.Sprint(result.RecordCount()), cfg.Color))
		for _, w := range result.Warnings {
			fmt.Printf("  %s %s\n", renderStyle(styleYellow, "Warning:", cfg.Color), w)
		}
	}

	return nil
}

func writeOutput(cfg buildConfig, css string) error {
	if cfg.Output == "" {
		_, err := os.Stdout.WriteString(css)
		return err
	}
	if err := os.WriteFile(cfg.Output, []byte(css), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	return nil
}

// loadCachedResult hydrates the previous run's snapshot so selector mangling
// and record ordering continue where they left off. A missing or unreadable
// cache starts a fresh result.
func loadCachedResult(cfg buildConfig, compiler *macrocss.Compiler) (*macrocss.CompilationResult, error) {
	if cfg.Cache == "" {
		return compiler.NewResult(), nil
	}

	// #nosec G304 - cache path comes from trusted configuration
	data, err := os.ReadFile(cfg.Cache)
	if err != nil {
		return compiler.NewResult(), nil
	}

	var snap macrocss.Snapshot
	if err := snap.UnmarshalBinary(data); err != nil {
		if cfg.Verbose && !cfg.Quiet {
			fmt.Printf("Ignoring unreadable cache %s: %v\n", cfg.Cache, err)
		}
		return compiler.NewResult(), nil
	}

	return macrocss.Hydrate(&snap, cfg.Screens, compiler.Hooks(), compiler.Mangler()), nil
}

func saveCachedResult(cfg buildConfig, result *macrocss.CompilationResult) error {
	if cfg.Cache == "" {
		return nil
	}
	data, err := result.Serialize().MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}
	if err := os.WriteFile(cfg.Cache, data, 0o644); err != nil {
		return fmt.Errorf("writing cache %s: %w", cfg.Cache, err)
	}
	return nil
}
