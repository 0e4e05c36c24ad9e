package usecases

import (
	"context"
	"fmt"

	"noticeboard/internal/application/category/dto"
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/logger"
)

type ListCategoriesUseCase struct {
	repo   announcement.CategoryRepository
	logger logger.Interface
}

func NewListCategoriesUseCase(repo announcement.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute returns every category. An empty board yields an empty slice, a
// storage failure yields an error.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*dto.CategoryResponse, error) {
	categories, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	responses := dto.ToCategoryResponseList(categories)
	if responses == nil {
		responses = []*dto.CategoryResponse{}
	}
	return responses, nil
}
