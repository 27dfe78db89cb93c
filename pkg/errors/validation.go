package errors

import (
	"strings"
	"unicode"
)

// ValidateDirName validates a directory basename used as a walk exclusion.
// Exclusions match single path components, so anything that looks like a
// path (separators, "." or "..") can never match and is rejected.
func ValidateDirName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidPath, "directory name cannot be empty")
	}

	const maxNameLength = 255
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidPath, "directory name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "directory name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "directory name cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "directory name cannot be %q", name)
	}

	return nil
}
