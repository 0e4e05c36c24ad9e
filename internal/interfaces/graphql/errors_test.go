package graphql

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"noticeboard/internal/shared/errors"
	"noticeboard/internal/shared/logger"
)

func TestErrorTranslator_Translate(t *testing.T) {
	translator := NewErrorTranslator(logger.NewNopLogger())

	tests := []struct {
		name        string
		opType      string
		op          string
		err         error
		wantMessage string
		wantCode    string
		wantDetails string
	}{
		{
			name:        "storage not found",
			opType:      "Query",
			op:          "announcement",
			err:         fmt.Errorf("failed to get announcement: %w", gorm.ErrRecordNotFound),
			wantMessage: "announcement not found",
			wantCode:    CodeNotFound,
		},
		{
			name:        "validation error kept",
			opType:      "Mutation",
			op:          "createAnnouncement",
			err:         errors.NewValidationError("Categories can not be empty"),
			wantMessage: "Categories can not be empty",
			wantCode:    CodeBadRequest,
		},
		{
			name:        "validation details exposed",
			opType:      "Mutation",
			op:          "createCategory",
			err:         errors.NewValidationError("Validation failed", "name is required"),
			wantMessage: "Validation failed",
			wantCode:    CodeBadRequest,
			wantDetails: "name is required",
		},
		{
			name:        "typed not found kept",
			opType:      "Mutation",
			op:          "deleteCategory",
			err:         errors.NewNotFoundError("Category 4 not found"),
			wantMessage: "Category 4 not found",
			wantCode:    CodeNotFound,
		},
		{
			name:        "conflict kept",
			opType:      "Mutation",
			op:          "deleteCategory",
			err:         errors.NewConflictError("Category 1 is used by announcements and can not be deleted"),
			wantMessage: "Category 1 is used by announcements and can not be deleted",
			wantCode:    CodeConflict,
		},
		{
			name:        "write failed kept",
			opType:      "Mutation",
			op:          "createAnnouncement",
			err:         errors.NewWriteFailedError("Announcement creation failed"),
			wantMessage: "Announcement creation failed",
			wantCode:    CodeInternalServerError,
		},
		{
			name:        "wrapped app error is not re-wrapped",
			opType:      "Mutation",
			op:          "updateAnnouncement",
			err:         fmt.Errorf("outer: %w", errors.NewNotFoundError("Announcement 9 not found")),
			wantMessage: "Announcement 9 not found",
			wantCode:    CodeNotFound,
		},
		{
			name:        "unexpected error is opaque",
			opType:      "Query",
			op:          "categories",
			err:         stderrors.New("dial tcp 10.0.0.1:5432: connection refused"),
			wantMessage: "Query categories failed",
			wantCode:    CodeInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translator.Translate(tt.opType, tt.op, tt.err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantMessage, apiErr.Error())
			assert.Equal(t, tt.wantCode, apiErr.Extensions()["code"])

			details, ok := apiErr.Extensions()["details"]
			if tt.wantDetails == "" {
				assert.False(t, ok)
			} else {
				assert.Equal(t, tt.wantDetails, details)
			}
		})
	}
}

func TestErrorTranslator_Nil(t *testing.T) {
	assert.NoError(t, NewErrorTranslator(logger.NewNopLogger()).Translate("Query", "categories", nil))
}
