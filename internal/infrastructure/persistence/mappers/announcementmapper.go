package mappers

import (
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/infrastructure/persistence/models"
	"noticeboard/internal/shared/mapper"
)

type AnnouncementMapper interface {
	ToEntity(model *models.AnnouncementModel) *announcement.Announcement
	ToModel(entity *announcement.Announcement) *models.AnnouncementModel
	ToEntities(models []*models.AnnouncementModel) []*announcement.Announcement
	ToJoinModels(announcementID uint, categoryIDs []uint) []models.AnnouncementCategoryModel
}

type AnnouncementMapperImpl struct {
	categories CategoryMapper
}

func NewAnnouncementMapper() AnnouncementMapper {
	return &AnnouncementMapperImpl{categories: NewCategoryMapper()}
}

func (m *AnnouncementMapperImpl) ToEntity(model *models.AnnouncementModel) *announcement.Announcement {
	if model == nil {
		return nil
	}

	categories := make([]announcement.Category, 0, len(model.Categories))
	for i := range model.Categories {
		categories = append(categories, *m.categories.ToEntity(&model.Categories[i]))
	}

	return &announcement.Announcement{
		ID:          model.ID,
		Title:       model.Title,
		Content:     model.Content,
		PublishedAt: model.PublishedAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		Categories:  categories,
	}
}

// ToModel maps the scalar columns only. Associations are written through
// ToJoinModels.
func (m *AnnouncementMapperImpl) ToModel(entity *announcement.Announcement) *models.AnnouncementModel {
	if entity == nil {
		return nil
	}

	return &models.AnnouncementModel{
		ID:          entity.ID,
		Title:       entity.Title,
		Content:     entity.Content,
		PublishedAt: entity.PublishedAt,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (m *AnnouncementMapperImpl) ToEntities(modelList []*models.AnnouncementModel) []*announcement.Announcement {
	return mapper.MapSlicePtr(modelList, m.ToEntity)
}

func (m *AnnouncementMapperImpl) ToJoinModels(announcementID uint, categoryIDs []uint) []models.AnnouncementCategoryModel {
	return mapper.MapSlice(categoryIDs, func(categoryID uint) models.AnnouncementCategoryModel {
		return models.AnnouncementCategoryModel{
			AnnouncementID: announcementID,
			CategoryID:     categoryID,
		}
	})
}
