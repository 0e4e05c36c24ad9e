package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noticeboard/internal/shared/config"
	"noticeboard/internal/shared/errors"
)

func TestValidatePagination(t *testing.T) {
	bounds := config.PaginationConfig{DefaultLimit: 20, MaxLimit: 50}

	tests := []struct {
		name    string
		limit   int
		offset  int
		wantErr bool
	}{
		{name: "first page", limit: 20, offset: 0},
		{name: "upper bound inclusive", limit: 50, offset: 100},
		{name: "zero limit", limit: 0, offset: 0, wantErr: true},
		{name: "negative limit", limit: -1, offset: 0, wantErr: true},
		{name: "limit above max", limit: 51, offset: 0, wantErr: true},
		{name: "negative offset", limit: 10, offset: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ValidatePagination(tt.limit, tt.offset, bounds)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Pagination{Limit: tt.limit, Offset: tt.offset}, p)
		})
	}
}

func TestValidatePagination_UnsetMaxFallsBack(t *testing.T) {
	_, err := ValidatePagination(DefaultMaxLimit, 0, config.PaginationConfig{})
	assert.NoError(t, err)

	_, err = ValidatePagination(DefaultMaxLimit+1, 0, config.PaginationConfig{})
	assert.Error(t, err)
}

func TestDefaultLimitOr(t *testing.T) {
	assert.Equal(t, 5, DefaultLimitOr(config.PaginationConfig{DefaultLimit: 5}))
	assert.Equal(t, DefaultPageLimit, DefaultLimitOr(config.PaginationConfig{}))
}
