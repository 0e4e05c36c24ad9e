package usecases

import (
	"context"
	"fmt"

	"noticeboard/internal/application/announcement/dto"
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/db"
	"noticeboard/internal/shared/errors"
	"noticeboard/internal/shared/logger"
	"noticeboard/internal/shared/utils"
)

type UpdateAnnouncementUseCase struct {
	repo            announcement.AnnouncementRepository
	txMgr           *db.TransactionManager
	markdownService dto.MarkdownService
	logger          logger.Interface
}

func NewUpdateAnnouncementUseCase(
	repo announcement.AnnouncementRepository,
	txMgr *db.TransactionManager,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *UpdateAnnouncementUseCase {
	return &UpdateAnnouncementUseCase{
		repo:            repo,
		txMgr:           txMgr,
		markdownService: markdownService,
		logger:          logger,
	}
}

// Execute applies a partial update in one transaction. A non-empty
// CategoryIDs replaces the whole association set; an empty one keeps it.
func (uc *UpdateAnnouncementUseCase) Execute(ctx context.Context, req dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	uc.logger.Infow("executing update announcement use case", "id", req.ID, "category_ids", req.CategoryIDs)

	if err := utils.ValidateStruct(&req); err != nil {
		return nil, err
	}

	notFound := errors.NewNotFoundError(fmt.Sprintf("Announcement %d not found", req.ID))
	patch := announcement.Patch{
		Title:       req.Title,
		Content:     req.Content,
		PublishedAt: req.PublishedAt,
	}

	var updated *announcement.Announcement
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.repo.Exists(txCtx, req.ID)
		if err != nil {
			return err
		}
		if !exists {
			return notFound
		}

		if len(req.CategoryIDs) > 0 {
			if err := uc.repo.ReplaceCategories(txCtx, req.ID, req.CategoryIDs); err != nil {
				return err
			}
		}

		if err := uc.repo.Update(txCtx, req.ID, patch); err != nil {
			return err
		}

		reread, err := uc.repo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.IsRecordNotFound(err) {
				return notFound
			}
			return err
		}
		updated = reread
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("announcement update failed", "error", err, "id", req.ID)
		return nil, errors.NewWriteFailedError("Announcement update failed")
	}

	uc.logger.Infow("announcement updated successfully", "id", req.ID)
	return dto.ToAnnouncementResponse(updated, uc.markdownService), nil
}
