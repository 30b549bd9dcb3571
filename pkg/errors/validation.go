package errors

import (
	"strings"
	"unicode"
)

// maxCoordinatePart bounds groupId and artifactId length.
const maxCoordinatePart = 256

// ValidateCoordinatePart validates a groupId or artifactId value.
// The field name is only used in the error message.
//
// Rejected values:
//   - empty or blank
//   - longer than 256 characters
//   - containing control characters or whitespace
//   - containing ':' (the coordinate separator)
func ValidateCoordinatePart(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeInvalidCoordinate, "%s cannot be empty", field)
	}

	if len(value) > maxCoordinatePart {
		return New(ErrCodeInvalidCoordinate, "%s too long (max %d characters)", field, maxCoordinatePart)
	}

	for _, r := range value {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidCoordinate, "%s contains invalid character %q", field, r)
		}
		if r == ':' {
			return New(ErrCodeInvalidCoordinate, "%s cannot contain ':'", field)
		}
	}

	return nil
}

// ValidateFormat reports an INVALID_FORMAT error when format is not one of
// the supported values.
func ValidateFormat(format string, supported ...string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (available: %s)", format, strings.Join(supported, ", "))
}
