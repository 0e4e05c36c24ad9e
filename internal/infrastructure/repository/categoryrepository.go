package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/infrastructure/persistence/mappers"
	"noticeboard/internal/infrastructure/persistence/models"
	"noticeboard/internal/shared/db"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) announcement.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*announcement.Category, error) {
	var modelList []*models.CategoryModel

	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, c *announcement.Category) error {
	model := r.mapper.ToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt

	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*announcement.Category, error) {
	var model models.CategoryModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *CategoryRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CategoryModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category %d: %w", id, err)
	}

	return count > 0, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, id uint, name *string) error {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if name != nil {
		updates["name"] = *name
	}

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CategoryModel{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update category %d: %w", id, err)
	}

	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Delete(&models.CategoryModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}

	return nil
}
