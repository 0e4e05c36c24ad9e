package graphql

import (
	"context"
	"fmt"
	"time"

	"github.com/graphql-go/graphql"

	announcementdto "noticeboard/internal/application/announcement/dto"
	categorydto "noticeboard/internal/application/category/dto"
	"noticeboard/internal/shared/config"
	"noticeboard/internal/shared/errors"
	"noticeboard/internal/shared/utils"
)

type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, req announcementdto.CreateAnnouncementRequest) (*announcementdto.AnnouncementResponse, error)
	UpdateAnnouncement(ctx context.Context, req announcementdto.UpdateAnnouncementRequest) (*announcementdto.AnnouncementResponse, error)
	DeleteAnnouncement(ctx context.Context, id uint) (bool, error)
	GetAnnouncement(ctx context.Context, id uint) (*announcementdto.AnnouncementResponse, error)
	ListAnnouncements(ctx context.Context, limit, offset int) ([]*announcementdto.AnnouncementResponse, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*categorydto.CategoryResponse, error)
	CreateCategory(ctx context.Context, req categorydto.CreateCategoryRequest) (*categorydto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, req categorydto.UpdateCategoryRequest) (*categorydto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uint) (bool, error)
}

// Resolver binds GraphQL fields to the application services.
type Resolver struct {
	announcements AnnouncementService
	categories    CategoryService
	translator    *ErrorTranslator
	pagination    config.PaginationConfig
}

func NewResolver(
	announcements AnnouncementService,
	categories CategoryService,
	translator *ErrorTranslator,
	pagination config.PaginationConfig,
) *Resolver {
	return &Resolver{
		announcements: announcements,
		categories:    categories,
		translator:    translator,
		pagination:    pagination,
	}
}

// wrap routes every failure of fn through the error translator.
func (r *Resolver) wrap(fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		out, err := fn(p)
		if err != nil {
			return nil, r.translator.Translate(p.Info.ParentType.Name(), p.Info.FieldName, err)
		}
		return out, nil
	}
}

func (r *Resolver) announcement(p graphql.ResolveParams) (interface{}, error) {
	id, err := toID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	return r.announcements.GetAnnouncement(p.Context, id)
}

func (r *Resolver) announcementList(p graphql.ResolveParams) (interface{}, error) {
	limit := utils.DefaultLimitOr(r.pagination)
	if v, ok := p.Args["limit"].(int); ok {
		limit = v
	}
	offset := 0
	if v, ok := p.Args["offset"].(int); ok {
		offset = v
	}

	window, err := utils.ValidatePagination(limit, offset, r.pagination)
	if err != nil {
		return nil, err
	}
	return r.announcements.ListAnnouncements(p.Context, window.Limit, window.Offset)
}

func (r *Resolver) categoryList(p graphql.ResolveParams) (interface{}, error) {
	return r.categories.ListCategories(p.Context)
}

func (r *Resolver) createAnnouncement(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)

	categoryIDs, err := toIDList(input["categoryIds"])
	if err != nil {
		return nil, err
	}

	req := announcementdto.CreateAnnouncementRequest{
		CategoryIDs: categoryIDs,
		PublishedAt: timeField(input, "publishedAt"),
	}
	if v := stringField(input, "title"); v != nil {
		req.Title = *v
	}
	if v := stringField(input, "content"); v != nil {
		req.Content = *v
	}

	return r.announcements.CreateAnnouncement(p.Context, req)
}

func (r *Resolver) updateAnnouncement(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)

	id, err := toID(input["id"])
	if err != nil {
		return nil, err
	}
	categoryIDs, err := toIDList(input["categoryIds"])
	if err != nil {
		return nil, err
	}

	return r.announcements.UpdateAnnouncement(p.Context, announcementdto.UpdateAnnouncementRequest{
		ID:          id,
		Title:       stringField(input, "title"),
		Content:     stringField(input, "content"),
		PublishedAt: timeField(input, "publishedAt"),
		CategoryIDs: categoryIDs,
	})
}

func (r *Resolver) deleteAnnouncement(p graphql.ResolveParams) (interface{}, error) {
	id, err := toID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	return r.announcements.DeleteAnnouncement(p.Context, id)
}

func (r *Resolver) createCategory(p graphql.ResolveParams) (interface{}, error) {
	req := categorydto.CreateCategoryRequest{}
	if v := stringField(inputArg(p), "name"); v != nil {
		req.Name = *v
	}
	return r.categories.CreateCategory(p.Context, req)
}

func (r *Resolver) updateCategory(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)

	id, err := toID(input["id"])
	if err != nil {
		return nil, err
	}

	return r.categories.UpdateCategory(p.Context, categorydto.UpdateCategoryRequest{
		ID:   id,
		Name: stringField(input, "name"),
	})
}

func (r *Resolver) deleteCategory(p graphql.ResolveParams) (interface{}, error) {
	id, err := toID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	return r.categories.DeleteCategory(p.Context, id)
}

func inputArg(p graphql.ResolveParams) map[string]interface{} {
	input, _ := p.Args["input"].(map[string]interface{})
	if input == nil {
		return map[string]interface{}{}
	}
	return input
}

func toID(v interface{}) (uint, error) {
	n, ok := v.(int)
	if !ok || n < 1 {
		return 0, errors.NewValidationError("Validation failed", fmt.Sprintf("id must be a positive integer, got %v", v))
	}
	return uint(n), nil
}

func toIDList(v interface{}) ([]uint, error) {
	raw, ok := v.([]interface{})
	if !ok {
		return nil, nil
	}

	ids := make([]uint, 0, len(raw))
	for _, item := range raw {
		id, err := toID(item)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func stringField(input map[string]interface{}, key string) *string {
	if v, ok := input[key].(string); ok {
		return &v
	}
	return nil
}

func timeField(input map[string]interface{}, key string) *time.Time {
	switch v := input[key].(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	default:
		return nil
	}
}
