package errors

import (
	"strings"
	"unicode"
)

// ValidateObjectID validates an object identifier for safety and uniqueness
// bookkeeping. IDs are opaque strings; these rules only reject values that
// would break file names, JSON keys, or URL path segments downstream.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - No path separators
//   - Maximum length of 128 characters
func ValidateObjectID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "object id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidID, "object id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidID, "object id contains control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidID, "object id cannot contain path separators")
	}

	return nil
}

// ValidateSizeMm validates a user-supplied dimension in millimeters.
//
// Note that this is input validation for the CLI and HTTP surfaces only: the
// geometry layer itself tolerates zero and negative sizes (they degenerate to
// empty boxes). User-entered dimensions, however, must be positive and within
// a sane range.
func ValidateSizeMm(name string, v float64) error {
	if v <= 0 {
		return New(ErrCodeInvalidSize, "%s must be positive, got %g", name, v)
	}
	const maxSizeMm = 1_000_000 // 1 km; anything bigger is a unit mistake
	if v > maxSizeMm {
		return New(ErrCodeInvalidSize, "%s too large (%g mm, max %d mm)", name, v, maxSizeMm)
	}
	return nil
}

// ValidateProjectName validates a project display name.
func ValidateProjectName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidProject, "project name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidProject, "project name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidProject, "project name contains control characters")
		}
	}
	return nil
}
