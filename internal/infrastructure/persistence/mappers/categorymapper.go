package mappers

import (
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/infrastructure/persistence/models"
	"noticeboard/internal/shared/mapper"
)

type CategoryMapper interface {
	ToEntity(model *models.CategoryModel) *announcement.Category
	ToModel(entity *announcement.Category) *models.CategoryModel
	ToEntities(models []*models.CategoryModel) []*announcement.Category
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToEntity(model *models.CategoryModel) *announcement.Category {
	if model == nil {
		return nil
	}

	return &announcement.Category{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *CategoryMapperImpl) ToModel(entity *announcement.Category) *models.CategoryModel {
	if entity == nil {
		return nil
	}

	return &models.CategoryModel{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *CategoryMapperImpl) ToEntities(modelList []*models.CategoryModel) []*announcement.Category {
	return mapper.MapSlicePtr(modelList, m.ToEntity)
}
