package filewalker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"

	"mergel10n/internal/fsys"
	"mergel10n/internal/stringsfile"
)

// Walker resolves base path patterns to localization folders, i.e. folders
// holding <master>.lproj/Localizable.strings.
type Walker struct {
	filesystem     fsys.FileSystem
	masterLanguage string
}

// NewWalker creates a Walker that recognises folders by their master file.
func NewWalker(filesystem fsys.FileSystem, masterLanguage string) *Walker {
	return &Walker{filesystem: filesystem, masterLanguage: masterLanguage}
}

// Expand returns the base paths matched by patterns, in pattern order and
// without repeats. Plain paths are returned unchanged even when they do not
// exist, so that a missing folder is reported by the merge itself. Glob
// patterns (including **) only yield folders that hold a master file.
func (w *Walker) Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, pattern := range patterns {
		if !containsGlob(pattern) {
			add(pattern)
			continue
		}

		matches, err := w.glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand base path %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			log.Warn().Str("pattern", pattern).Msg("Base path pattern matched no localization folder")
		}
		for _, m := range matches {
			add(m)
		}
	}

	return paths, nil
}

func (w *Walker) glob(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, doublestar.ErrBadPattern
	}

	pattern = filepath.Clean(pattern)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}
	relPattern, err := filepath.Rel(baseDir, pattern)
	if err != nil {
		return nil, err
	}

	var matches []string
	err = fs.WalkDir(w.filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(baseDir, path)
		if err != nil {
			return nil
		}
		if matched, _ := doublestar.Match(filepath.ToSlash(relPattern), filepath.ToSlash(relPath)); !matched {
			return nil
		}

		master := stringsfile.File{BasePath: path, Language: w.masterLanguage}
		if w.filesystem.Exists(master.Path()) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Debug().Str("pattern", pattern).Int("count", len(matches)).Msg("Discovered localization folders")
	return matches, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
