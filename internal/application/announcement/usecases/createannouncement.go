package usecases

import (
	"context"
	"fmt"

	"noticeboard/internal/application/announcement/dto"
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/constants"
	"noticeboard/internal/shared/db"
	"noticeboard/internal/shared/errors"
	"noticeboard/internal/shared/logger"
	"noticeboard/internal/shared/utils"
)

type CreateAnnouncementUseCase struct {
	repo            announcement.AnnouncementRepository
	txMgr           *db.TransactionManager
	markdownService dto.MarkdownService
	logger          logger.Interface
}

func NewCreateAnnouncementUseCase(
	repo announcement.AnnouncementRepository,
	txMgr *db.TransactionManager,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *CreateAnnouncementUseCase {
	return &CreateAnnouncementUseCase{
		repo:            repo,
		txMgr:           txMgr,
		markdownService: markdownService,
		logger:          logger,
	}
}

// Execute saves the announcement with its category links and returns the
// canonical re-read, all inside one transaction. Input is checked before the
// transaction starts; any later failure rolls everything back.
func (uc *CreateAnnouncementUseCase) Execute(ctx context.Context, req dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	uc.logger.Infow("executing create announcement use case", "title", req.Title, "category_ids", req.CategoryIDs)

	if len(req.CategoryIDs) == 0 {
		return nil, errors.NewValidationError(constants.ErrMsgEmptyCategories)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return nil, err
	}

	entity := announcement.NewAnnouncement(req.Title, req.Content, req.PublishedAt, req.CategoryIDs)

	var created *announcement.Announcement
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Create(txCtx, entity); err != nil {
			return fmt.Errorf("failed to save announcement: %w", err)
		}

		reread, err := uc.repo.GetByID(txCtx, entity.ID)
		if err != nil {
			return fmt.Errorf("failed to reload announcement: %w", err)
		}
		created = reread
		return nil
	})
	if err != nil {
		uc.logger.Errorw("announcement creation failed", "error", err, "title", req.Title)
		return nil, errors.NewWriteFailedError("Announcement creation failed")
	}

	uc.logger.Infow("announcement created successfully", "id", created.ID)
	return dto.ToAnnouncementResponse(created, uc.markdownService), nil
}
