package util

import (
	"errors"
	"strings"
)

// SanitizeFileName removes path separators and quotes, rejects traversal
// patterns, and guarantees the given extension.
func SanitizeFileName(name, ext string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.NewReplacer("/", "_", "\\", "_", `"`, "", "\r", "", "\n", "").Replace(s)
	if s == "" {
		return "", errors.New("invalid file name")
	}
	if ext != "" && !strings.HasSuffix(strings.ToLower(s), strings.ToLower(ext)) {
		s += ext
	}
	return s, nil
}
