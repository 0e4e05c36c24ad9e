package usecases

import (
	"context"
	"fmt"

	"noticeboard/internal/application/announcement/dto"
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/logger"
)

type ListAnnouncementsUseCase struct {
	repo            announcement.AnnouncementRepository
	markdownService dto.MarkdownService
	logger          logger.Interface
}

func NewListAnnouncementsUseCase(
	repo announcement.AnnouncementRepository,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *ListAnnouncementsUseCase {
	return &ListAnnouncementsUseCase{
		repo:            repo,
		markdownService: markdownService,
		logger:          logger,
	}
}

// Execute returns at most limit announcements in ascending id order after
// skipping offset. Bounds are the caller's responsibility.
func (uc *ListAnnouncementsUseCase) Execute(ctx context.Context, limit, offset int) ([]*dto.AnnouncementResponse, error) {
	announcements, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list announcements", "error", err, "limit", limit, "offset", offset)
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	return dto.ToAnnouncementResponseList(announcements, uc.markdownService), nil
}
