package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateDimension checks that v is a finite, strictly positive length.
// The name is used in the error message (e.g. "design width").
func ValidateDimension(code Code, name string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return New(code, "%s must be finite, got %v", name, v)
	case v <= 0:
		return New(code, "%s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateViewport checks a host-reported viewport extent.
// Zero is allowed (a host that has not laid out yet); negative or
// non-finite values are rejected.
func ValidateViewport(w, h float64) error {
	for _, v := range [2]float64{w, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return New(ErrCodeInvalidViewport, "viewport %vx%v is not a valid extent", w, h)
		}
	}
	return nil
}

// ValidatePath validates a profile file path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
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

	return nil
}
