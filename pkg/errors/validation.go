package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxNameLength bounds strings that end up in a package name table.
const maxNameLength = 1024

// ValidateName validates a string an operator asks to place in a name table.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 1024 bytes
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "name too long (max %d bytes)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name %q contains control characters", name)
		}
	}

	return nil
}

// ValidateAssetPath validates a container path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must carry a file extension, since the sibling payload path is derived
//     by swapping it
func ValidateAssetPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "asset path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "asset path contains invalid characters")
		}
	}

	if filepath.Ext(path) == "" {
		return New(ErrCodeInvalidInput, "asset path %q has no extension", path)
	}

	return nil
}
