package errors

import (
	"strings"
	"unicode"
)

// Output formats accepted by ValidateFormat.
var validFormats = map[string]bool{"svg": true, "json": true, "png": true, "pdf": true}

// ValidateFormat checks that format names a supported output format.
// Matching is case-sensitive.
func ValidateFormat(format string) error {
	if !validFormats[format] {
		return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, png, pdf)", format)
	}
	return nil
}

// ValidatePath validates an output path supplied by a remote caller.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateDim checks an axis dimension tag.
func ValidateDim(dim string) error {
	if dim != "x" && dim != "y" {
		return New(ErrCodeInvalidAxis, "invalid dim: %q (must be x or y)", dim)
	}
	return nil
}

// ValidatePosition checks an axis position tag and that it agrees with dim.
// Horizontal positions (top, bottom) belong to x axes, vertical ones to y axes.
func ValidatePosition(dim, position string) error {
	switch position {
	case "top", "bottom":
		if dim != "x" {
			return New(ErrCodeInvalidAxis, "position %q requires dim x, got %q", position, dim)
		}
	case "left", "right":
		if dim != "y" {
			return New(ErrCodeInvalidAxis, "position %q requires dim y, got %q", position, dim)
		}
	default:
		return New(ErrCodeInvalidAxis, "invalid position: %q (must be one of: top, bottom, left, right)", position)
	}
	return nil
}
