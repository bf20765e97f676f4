package main

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// scanStats tracks file discovery statistics for verbose output.
type scanStats struct {
	FilesDiscovered int
	FilesScanned    int
	FilesSkipped    int
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile excludes gitignored files from scanning. Only relative
// paths are checked; absolute paths (like /tmp/...) are outside the project
// and never filtered by its gitignore.
func shouldSkipFile(path string) bool {
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// expandGlobPatterns expands glob patterns to deduplicated file paths,
// tracking discovery statistics.
func expandGlobPatterns(patterns []string) ([]string, scanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := scanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			// Mark skipped files too, so overlapping patterns never re-stat
			// or double-count a match.
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
			} else {
				allFiles = append(allFiles, match)
				stats.FilesScanned++
			}
		}
	}

	return allFiles, stats, nil
}
