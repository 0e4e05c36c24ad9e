package usecases

import (
	"context"
	"fmt"

	"noticeboard/internal/application/category/dto"
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/errors"
	"noticeboard/internal/shared/logger"
	"noticeboard/internal/shared/utils"
)

type CreateCategoryUseCase struct {
	repo   announcement.CategoryRepository
	logger logger.Interface
}

func NewCreateCategoryUseCase(repo announcement.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uc.logger.Infow("executing create category use case", "name", req.Name)

	if err := utils.ValidateStruct(&req); err != nil {
		return nil, err
	}

	category := &announcement.Category{Name: req.Name}
	if err := uc.repo.Create(ctx, category); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("Category %q already exists", req.Name))
		}
		uc.logger.Errorw("failed to persist category", "error", err, "name", req.Name)
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	uc.logger.Infow("category created successfully", "id", category.ID)
	return dto.ToCategoryResponse(category), nil
}
