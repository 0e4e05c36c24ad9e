package dto

import (
	categorydto "noticeboard/internal/application/category/dto"
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/shared/mapper"
)

type MarkdownService interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// ToAnnouncementResponse maps a hydrated announcement. ContentHTML stays empty
// when no markdown service is given or rendering fails.
func ToAnnouncementResponse(a *announcement.Announcement, markdownSvc MarkdownService) *AnnouncementResponse {
	if a == nil {
		return nil
	}

	contentHTML := ""
	if markdownSvc != nil {
		html, err := markdownSvc.ToHTMLSanitized(a.Content)
		if err == nil {
			contentHTML = html
		}
	}

	categories := make([]*categorydto.CategoryResponse, 0, len(a.Categories))
	for i := range a.Categories {
		categories = append(categories, categorydto.ToCategoryResponse(&a.Categories[i]))
	}

	return &AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		ContentHTML: contentHTML,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Categories:  categories,
	}
}

func ToAnnouncementResponseList(announcements []*announcement.Announcement, markdownSvc MarkdownService) []*AnnouncementResponse {
	responses := mapper.MapSlicePtr(announcements, func(a *announcement.Announcement) *AnnouncementResponse {
		return ToAnnouncementResponse(a, markdownSvc)
	})
	if responses == nil {
		return []*AnnouncementResponse{}
	}
	return responses
}
