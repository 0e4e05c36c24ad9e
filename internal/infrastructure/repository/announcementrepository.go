package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/infrastructure/persistence/mappers"
	"noticeboard/internal/infrastructure/persistence/models"
	"noticeboard/internal/shared/db"
)

type AnnouncementRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AnnouncementMapper
}

func NewAnnouncementRepository(db *gorm.DB) announcement.AnnouncementRepository {
	return &AnnouncementRepositoryImpl{
		db:     db,
		mapper: mappers.NewAnnouncementMapper(),
	}
}

// hydrated preloads categories in id order.
func hydrated(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

func (r *AnnouncementRepositoryImpl) Create(ctx context.Context, a *announcement.Announcement) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(a)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	if err := r.insertLinks(tx, model.ID, a.CategoryIDs()); err != nil {
		return err
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt

	return nil
}

func (r *AnnouncementRepositoryImpl) insertLinks(tx *gorm.DB, announcementID uint, categoryIDs []uint) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	rows := r.mapper.ToJoinModels(announcementID, categoryIDs)
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to link announcement %d to categories: %w", announcementID, err)
	}
	return nil
}

func (r *AnnouncementRepositoryImpl) GetByID(ctx context.Context, id uint) (*announcement.Announcement, error) {
	var model models.AnnouncementModel

	if err := hydrated(db.GetTxFromContext(ctx, r.db)).First(&model, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get announcement %d: %w", id, err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *AnnouncementRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*announcement.Announcement, error) {
	var modelList []*models.AnnouncementModel

	query := hydrated(db.GetTxFromContext(ctx, r.db)).
		Order("id ASC").
		Limit(limit).
		Offset(offset)

	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}

func (r *AnnouncementRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AnnouncementModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check announcement %d: %w", id, err)
	}

	return count > 0, nil
}

func (r *AnnouncementRepositoryImpl) Update(ctx context.Context, id uint, patch announcement.Patch) error {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.PublishedAt != nil {
		updates["published_at"] = *patch.PublishedAt
	}

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AnnouncementModel{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update announcement %d: %w", id, err)
	}

	return nil
}

func (r *AnnouncementRepositoryImpl) ReplaceCategories(ctx context.Context, id uint, categoryIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("announcement_id = ?", id).
		Delete(&models.AnnouncementCategoryModel{}).Error; err != nil {
		return fmt.Errorf("failed to unlink categories of announcement %d: %w", id, err)
	}

	return r.insertLinks(tx, id, announcement.UniqueIDs(categoryIDs))
}

func (r *AnnouncementRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Delete(&models.AnnouncementModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete announcement %d: %w", id, err)
	}

	return nil
}
