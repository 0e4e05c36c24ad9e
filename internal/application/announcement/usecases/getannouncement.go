package usecases

import (
	"context"
	"fmt"

	"noticeboard/internal/application/announcement/dto"
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/logger"
)

type GetAnnouncementUseCase struct {
	repo            announcement.AnnouncementRepository
	markdownService dto.MarkdownService
	logger          logger.Interface
}

func NewGetAnnouncementUseCase(
	repo announcement.AnnouncementRepository,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *GetAnnouncementUseCase {
	return &GetAnnouncementUseCase{
		repo:            repo,
		markdownService: markdownService,
		logger:          logger,
	}
}

// Execute returns the hydrated announcement. A missing row surfaces as the
// wrapped storage not-found error.
func (uc *GetAnnouncementUseCase) Execute(ctx context.Context, id uint) (*dto.AnnouncementResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}

	return dto.ToAnnouncementResponse(a, uc.markdownService), nil
}
