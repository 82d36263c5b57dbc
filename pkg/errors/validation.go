package errors

import (
	"strings"
	"unicode"
)

// ValidateColumnName validates a dataset column name for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
//
// Whether the column actually exists in a dataset is checked separately by
// the paginator during argument validation.
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "column name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "column name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "column name contains invalid control characters")
		}
	}

	return nil
}

// ValidateGridShape validates a requested page grid shape.
// Both dimensions must be positive; zero values are reported as missing
// arguments to match the paginate call surface, negative values as an
// invalid grid shape.
func ValidateGridShape(nrow, ncol int) error {
	if nrow == 0 {
		return New(ErrCodeMissingArgument, "nrow is required")
	}
	if ncol == 0 {
		return New(ErrCodeMissingArgument, "ncol is required")
	}
	if nrow < 0 {
		return New(ErrCodeInvalidGridShape, "nrow must be positive, got %d", nrow)
	}
	if ncol < 0 {
		return New(ErrCodeInvalidGridShape, "ncol must be positive, got %d", ncol)
	}
	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
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

	return nil
}

// MissingColumns formats a list of missing facet columns into a single
// UNKNOWN_FACET_COLUMN error naming every offending column.
func MissingColumns(missing []string) *Error {
	if len(missing) == 1 {
		return New(ErrCodeUnknownFacetColumn, "unknown facet column: %s", missing[0])
	}
	return New(ErrCodeUnknownFacetColumn, "unknown facet columns: %s", strings.Join(missing, ", "))
}
