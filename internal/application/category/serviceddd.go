package category

import (
	"context"

	"noticeboard/internal/application/category/dto"
	"noticeboard/internal/application/category/usecases"
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/db"
	"noticeboard/internal/shared/logger"
)

type ServiceDDD struct {
	listCategories *usecases.ListCategoriesUseCase
	createCategory *usecases.CreateCategoryUseCase
	updateCategory *usecases.UpdateCategoryUseCase
	deleteCategory *usecases.DeleteCategoryUseCase
}

func NewServiceDDD(
	categoryRepo announcement.CategoryRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		listCategories: usecases.NewListCategoriesUseCase(categoryRepo, logger),
		createCategory: usecases.NewCreateCategoryUseCase(categoryRepo, logger),
		updateCategory: usecases.NewUpdateCategoryUseCase(categoryRepo, txMgr, logger),
		deleteCategory: usecases.NewDeleteCategoryUseCase(categoryRepo, logger),
	}
}

func (s *ServiceDDD) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	return s.listCategories.Execute(ctx)
}

func (s *ServiceDDD) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	return s.createCategory.Execute(ctx, req)
}

func (s *ServiceDDD) UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	return s.updateCategory.Execute(ctx, req)
}

func (s *ServiceDDD) DeleteCategory(ctx context.Context, id uint) (bool, error) {
	return s.deleteCategory.Execute(ctx, id)
}
