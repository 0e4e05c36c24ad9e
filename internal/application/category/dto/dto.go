package dto

import (
	"time"

	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/mapper"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// UpdateCategoryRequest is a partial update; a nil Name keeps the current one.
type UpdateCategoryRequest struct {
	ID   uint    `json:"id" validate:"required"`
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToCategoryResponse(c *announcement.Category) *CategoryResponse {
	if c == nil {
		return nil
	}

	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToCategoryResponseList(categories []*announcement.Category) []*CategoryResponse {
	return mapper.MapSlicePtr(categories, ToCategoryResponse)
}
