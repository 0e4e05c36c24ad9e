package usecases

import (
	"context"
	"fmt"

	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/errors"
	"noticeboard/internal/shared/logger"
)

type DeleteCategoryUseCase struct {
	repo   announcement.CategoryRepository
	logger logger.Interface
}

func NewDeleteCategoryUseCase(repo announcement.CategoryRepository, logger logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute deletes the category. Categories still linked to an announcement
// are refused with a conflict.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uint) (bool, error) {
	uc.logger.Infow("executing delete category use case", "id", id)

	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to check category", "error", err, "id", id)
		return false, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return false, errors.NewNotFoundError(fmt.Sprintf("Category %d not found", id))
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.IsForeignKeyError(err) {
			uc.logger.Warnw("category still referenced by announcements", "id", id)
			return false, errors.NewConflictError(
				fmt.Sprintf("Category %d is used by announcements and can not be deleted", id))
		}
		uc.logger.Errorw("failed to delete category", "error", err, "id", id)
		return false, errors.NewWriteFailedError("Category deletion failed")
	}

	uc.logger.Infow("category deleted successfully", "id", id)
	return true, nil
}
