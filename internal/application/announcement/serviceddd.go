package announcement

import (
	"context"

	"noticeboard/internal/application/announcement/dto"
	"noticeboard/internal/application/announcement/usecases"
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/db"
	"noticeboard/internal/shared/logger"
)

type ServiceDDD struct {
	createAnnouncement *usecases.CreateAnnouncementUseCase
	updateAnnouncement *usecases.UpdateAnnouncementUseCase
	deleteAnnouncement *usecases.DeleteAnnouncementUseCase
	getAnnouncement    *usecases.GetAnnouncementUseCase
	listAnnouncements  *usecases.ListAnnouncementsUseCase
}

func NewServiceDDD(
	announcementRepo announcement.AnnouncementRepository,
	txMgr *db.TransactionManager,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		createAnnouncement: usecases.NewCreateAnnouncementUseCase(announcementRepo, txMgr, markdownService, logger),
		updateAnnouncement: usecases.NewUpdateAnnouncementUseCase(announcementRepo, txMgr, markdownService, logger),
		deleteAnnouncement: usecases.NewDeleteAnnouncementUseCase(announcementRepo, logger),
		getAnnouncement:    usecases.NewGetAnnouncementUseCase(announcementRepo, markdownService, logger),
		listAnnouncements:  usecases.NewListAnnouncementsUseCase(announcementRepo, markdownService, logger),
	}
}

func (s *ServiceDDD) CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	return s.createAnnouncement.Execute(ctx, req)
}

func (s *ServiceDDD) UpdateAnnouncement(ctx context.Context, req dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	return s.updateAnnouncement.Execute(ctx, req)
}

func (s *ServiceDDD) DeleteAnnouncement(ctx context.Context, id uint) (bool, error) {
	return s.deleteAnnouncement.Execute(ctx, id)
}

func (s *ServiceDDD) GetAnnouncement(ctx context.Context, id uint) (*dto.AnnouncementResponse, error) {
	return s.getAnnouncement.Execute(ctx, id)
}

func (s *ServiceDDD) ListAnnouncements(ctx context.Context, limit, offset int) ([]*dto.AnnouncementResponse, error) {
	return s.listAnnouncements.Execute(ctx, limit, offset)
}
