package usecases

import (
	"context"
	"fmt"

	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/errors"
	"noticeboard/internal/shared/logger"
)

type DeleteAnnouncementUseCase struct {
	repo   announcement.AnnouncementRepository
	logger logger.Interface
}

func NewDeleteAnnouncementUseCase(repo announcement.AnnouncementRepository, logger logger.Interface) *DeleteAnnouncementUseCase {
	return &DeleteAnnouncementUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute removes the announcement and its category links. The existence
// check runs first so a missing row is told apart from a failed delete.
func (uc *DeleteAnnouncementUseCase) Execute(ctx context.Context, id uint) (bool, error) {
	uc.logger.Infow("executing delete announcement use case", "id", id)

	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to check announcement", "error", err, "id", id)
		return false, fmt.Errorf("failed to check announcement: %w", err)
	}
	if !exists {
		return false, errors.NewNotFoundError(fmt.Sprintf("Announcement %d not found", id))
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete announcement", "error", err, "id", id)
		return false, errors.NewWriteFailedError("Announcement deletion failed")
	}

	uc.logger.Infow("announcement deleted successfully", "id", id)
	return true, nil
}
