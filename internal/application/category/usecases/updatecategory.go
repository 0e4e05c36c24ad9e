package usecases

import (
	"context"
	"fmt"

	"noticeboard/internal/application/category/dto"
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/db"
	"noticeboard/internal/shared/errors"
	"noticeboard/internal/shared/logger"
	"noticeboard/internal/shared/utils"
)

type UpdateCategoryUseCase struct {
	repo   announcement.CategoryRepository
	txMgr  *db.TransactionManager
	logger logger.Interface
}

func NewUpdateCategoryUseCase(
	repo announcement.CategoryRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		repo:   repo,
		txMgr:  txMgr,
		logger: logger,
	}
}

// Execute checks existence, writes and re-reads in one transaction so the row
// cannot vanish between the check and the write.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uc.logger.Infow("executing update category use case", "id", req.ID)

	if err := utils.ValidateStruct(&req); err != nil {
		return nil, err
	}

	var updated *announcement.Category
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.repo.Exists(txCtx, req.ID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewNotFoundError(fmt.Sprintf("Category %d not found", req.ID))
		}

		if err := uc.repo.Update(txCtx, req.ID, req.Name); err != nil {
			return err
		}

		updated, err = uc.repo.GetByID(txCtx, req.ID)
		return err
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		if errors.IsDuplicateError(err) && req.Name != nil {
			return nil, errors.NewConflictError(fmt.Sprintf("Category %q already exists", *req.Name))
		}
		uc.logger.Errorw("category update failed", "error", err, "id", req.ID)
		return nil, errors.NewWriteFailedError("Category update failed")
	}

	uc.logger.Infow("category updated successfully", "id", req.ID)
	return dto.ToCategoryResponse(updated), nil
}
