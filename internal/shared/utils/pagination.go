package utils

import (
	"fmt"

	"noticeboard/internal/shared/config"
	"noticeboard/internal/shared/errors"
)

// Pagination is a validated limit/offset window.
type Pagination struct {
	Limit  int
	Offset int
}

// ValidatePagination checks a caller-supplied window against the configured
// bounds. Limit must be within [1, MaxLimit] and offset must not be negative.
// Values are never silently clamped so callers learn about bad input.
func ValidatePagination(limit, offset int, bounds config.PaginationConfig) (Pagination, error) {
	maxLimit := bounds.MaxLimit
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}

	if limit < 1 || limit > maxLimit {
		return Pagination{}, errors.NewValidationError(
			"Validation failed",
			fmt.Sprintf("limit must be between 1 and %d", maxLimit),
		)
	}
	if offset < 0 {
		return Pagination{}, errors.NewValidationError(
			"Validation failed",
			"offset must be greater than or equal to 0",
		)
	}

	return Pagination{Limit: limit, Offset: offset}, nil
}

// DefaultLimitOr returns the configured default page size, falling back to
// DefaultPageLimit when unset.
func DefaultLimitOr(bounds config.PaginationConfig) int {
	if bounds.DefaultLimit > 0 {
		return bounds.DefaultLimit
	}
	return DefaultPageLimit
}

const (
	DefaultPageLimit = 20
	DefaultMaxLimit  = 100
)
