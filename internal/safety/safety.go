package safety

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateName checks that name is a single path segment: no separators,
// not "." or "..", not absolute.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("reserved name: %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name must not contain path separators: %q", name)
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("absolute paths are not allowed: %q", name)
	}
	return nil
}

// Join joins root with parts and verifies the result stays inside root.
func Join(root string, parts ...string) (string, error) {
	p := filepath.Join(append([]string{root}, parts...)...)
	cleanRoot := filepath.Clean(root)
	cleanP := filepath.Clean(p)

	rel, err := filepath.Rel(cleanRoot, cleanP)
	if err != nil {
		return "", err
	}
	relSl := filepath.ToSlash(rel)
	if relSl == ".." || strings.HasPrefix(relSl, "../") {
		return "", fmt.Errorf("path escapes the destination root: %s", p)
	}
	return cleanP, nil
}
