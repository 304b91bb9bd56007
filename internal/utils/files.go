package utils

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	kerrors "github.com/PolarWolf314/unveil/internal/errors"
)

// ExpandTextFiles expands glob patterns into a sorted, de-duplicated list of
// regular files. Patterns support ** for recursive matching. A pattern
// without glob characters must name an existing file, otherwise
// ErrNoFilesFound is returned even if other patterns match.
func ExpandTextFiles(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		found := false
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			found = true
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}

		if !found && !hasGlobMeta(pattern) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrNoFilesFound, pattern)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrNoFilesFound, strings.Join(patterns, ", "))
	}

	sort.Strings(files)
	return files, nil
}

// hasGlobMeta reports whether pattern contains doublestar metacharacters.
func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// ReadTextFiles reads each file and returns its content with surrounding
// whitespace trimmed, in the order given.
func ReadTextFiles(paths []string) ([]string, error) {
	texts := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		texts = append(texts, strings.TrimSpace(string(data)))
	}
	return texts, nil
}
