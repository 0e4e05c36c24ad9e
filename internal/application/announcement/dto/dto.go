package dto

import (
	"time"

	categorydto "noticeboard/internal/application/category/dto"
)

type CreateAnnouncementRequest struct {
	Title       string     `json:"title" validate:"required,max=1000"`
	Content     string     `json:"content" validate:"required"`
	PublishedAt *time.Time `json:"publishedAt"`
	CategoryIDs []uint     `json:"categoryIds" validate:"dive,gt=0"`
}

// UpdateAnnouncementRequest is a partial update. Nil fields are kept and an
// empty CategoryIDs leaves the association set untouched.
type UpdateAnnouncementRequest struct {
	ID          uint       `json:"id" validate:"required"`
	Title       *string    `json:"title" validate:"omitempty,min=1,max=1000"`
	Content     *string    `json:"content" validate:"omitempty,min=1"`
	PublishedAt *time.Time `json:"publishedAt"`
	CategoryIDs []uint     `json:"categoryIds" validate:"dive,gt=0"`
}

type AnnouncementResponse struct {
	ID          uint                            `json:"id"`
	Title       string                          `json:"title"`
	Content     string                          `json:"content"`
	ContentHTML string                          `json:"contentHtml"`
	PublishedAt *time.Time                      `json:"publishedAt"`
	CreatedAt   time.Time                       `json:"createdAt"`
	UpdatedAt   time.Time                       `json:"updatedAt"`
	Categories  []*categorydto.CategoryResponse `json:"categories"`
}
