package errors

import (
	"strings"
	"unicode"
)

// ValidateEntryText validates a string entry before it is pushed onto a path.
// It rejects values that would make the persisted file or log output unsafe
// to display.
//
// The validation rules are intentionally conservative:
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
//
// Empty strings are allowed; an empty identifier is a legal destination key.
func ValidateEntryText(text string) error {
	if len(text) > 256 {
		return New(ErrCodeInvalidEntry, "entry text too long (max 256 characters)")
	}

	for _, r := range text {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidEntry, "entry text contains invalid control characters")
		}
	}

	return nil
}

// ValidateStorageKey validates a redis key or mongo collection name supplied
// via configuration. It ensures the key is a simple identifier without
// whitespace or control characters.
func ValidateStorageKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidBackend, "storage key cannot be empty")
	}

	if len(key) > 128 {
		return New(ErrCodeInvalidBackend, "storage key too long (max 128 characters)")
	}

	for _, r := range key {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidBackend, "storage key contains invalid characters")
		}
	}

	return nil
}

// ValidateStoragePath validates a user-supplied file path for the file
// backend. The path is used as-is on the user's own filesystem, so traversal
// is not a concern, but control characters and null bytes are rejected.
func ValidateStoragePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "storage path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "storage path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "storage path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "storage path cannot have leading or trailing whitespace")
	}

	return nil
}
