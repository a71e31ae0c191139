package scanner

import (
	"path"
	"path/filepath"
	"strings"
)

// Matcher decides whether a relative path is excluded from a scan.
// Patterns support:
//   - basename globs: *.tmp, *.log
//   - directory patterns: .git/, node_modules/
//   - path globs: build/*, docs/*.md
//   - any-depth patterns: **/cache/*, **/*.bak
type Matcher struct {
	patterns []string
}

// NewMatcher normalizes the patterns and drops empty ones
func NewMatcher(patterns []string) *Matcher {
	m := &Matcher{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		m.patterns = append(m.patterns, filepath.ToSlash(p))
	}
	return m
}

// Empty reports whether the matcher excludes nothing
func (m *Matcher) Empty() bool {
	return m == nil || len(m.patterns) == 0
}

// Match reports whether relativePath (leading separator included) is excluded
func (m *Matcher) Match(relativePath string) bool {
	if m.Empty() {
		return false
	}

	rel := strings.TrimPrefix(filepath.ToSlash(relativePath), "/")
	base := path.Base(rel)

	for _, pattern := range m.patterns {
		if matchPattern(rel, base, pattern) {
			return true
		}
	}
	return false
}

func matchPattern(rel, base, pattern string) bool {
	// Directory pattern
	if strings.HasSuffix(pattern, "/") {
		dir := strings.Trim(pattern, "/")
		return strings.HasPrefix(rel, dir+"/") || strings.Contains(rel, "/"+dir+"/")
	}

	// **/suffix matches at any depth
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		if matchGlob(base, rest) || rel == rest || strings.HasSuffix(rel, "/"+rest) {
			return true
		}
		return matchTail(rel, rest)
	}

	if strings.Contains(pattern, "/") {
		return matchGlob(rel, strings.TrimPrefix(pattern, "/"))
	}

	return matchGlob(base, pattern)
}

// matchTail tries the glob against every trailing run of path components
func matchTail(rel, pattern string) bool {
	parts := strings.Split(rel, "/")
	for i := range parts {
		if matchGlob(strings.Join(parts[i:], "/"), pattern) {
			return true
		}
	}
	return false
}

func matchGlob(name, pattern string) bool {
	matched, _ := path.Match(pattern, name)
	return matched
}
