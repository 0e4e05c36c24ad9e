package seeds

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"noticeboard/internal/infrastructure/persistence/models"
)

var seedCategories = []string{
	"City",
	"Community events",
	"Crime & Safety",
	"Culture",
	"Discounts & Benefits",
	"Emergencies",
	"For Seniors",
	"Health",
	"Kids & Family",
}

type seedAnnouncement struct {
	Title       string
	Content     string
	PublishedAt string
	Categories  []string
}

var seedAnnouncements = []seedAnnouncement{
	{
		Title:       "Downtown Road Closures",
		Content:     "Several streets will be closed due to the marathon this weekend. Plan alternate routes.",
		PublishedAt: "2023-08-11T04:38:00Z",
		Categories:  []string{"City"},
	},
	{
		Title:       "Community Picnic on Saturday",
		Content:     "Join us at Central Park for food, music, and games for all ages starting at noon.",
		PublishedAt: "2023-08-10T14:12:00Z",
		Categories:  []string{"City", "Community events"},
	},
	{
		Title:       "New Art Exhibit Opening",
		Content:     "Local artists showcase their work at the Modern Gallery. Exhibit runs all month.",
		PublishedAt: "2023-07-22T11:00:00Z",
		Categories:  []string{"City", "Culture"},
	},
	{
		Title:       "Emergency Services Drill",
		Content:     "Emergency responders will conduct a preparedness drill near the city center tomorrow.",
		PublishedAt: "2023-06-19T09:45:00Z",
		Categories:  []string{"City", "Emergencies"},
	},
	{
		Title:       "Senior Health Checkup Program",
		Content:     "Free health checkups for seniors available at city clinics this week only.",
		PublishedAt: "2023-05-15T10:00:00Z",
		Categories:  []string{"City", "For Seniors", "Health"},
	},
	{
		Title:       "Children’s Reading Festival",
		Content:     "Bring your kids to the main library for fun book-themed activities and story time.",
		PublishedAt: "2023-04-18T16:20:00Z",
		Categories:  []string{"City", "Kids & Family"},
	},
	{
		Title:       "Stay Safe This Summer",
		Content:     "Tips from the fire department to avoid heat-related illnesses and stay hydrated.",
		PublishedAt: "2023-07-05T08:30:00Z",
		Categories:  []string{"City", "Emergencies"},
	},
	{
		Title:       "Discount Transit Passes",
		Content:     "Eligible residents can apply online for discounted public transportation passes.",
		PublishedAt: "2023-06-30T12:00:00Z",
		Categories:  []string{"City", "Discounts & Benefits"},
	},
	{
		Title:       "Crime Watch Meeting",
		Content:     "Residents are invited to discuss recent incidents and safety strategies.",
		PublishedAt: "2023-03-29T18:45:00Z",
		Categories:  []string{"City", "Crime & Safety"},
	},
	{
		Title:       "Cultural Parade Announced",
		Content:     "The city will host its annual cultural celebration downtown next Sunday.",
		PublishedAt: "2023-08-01T13:00:00Z",
		Categories:  []string{"City", "Culture", "Community events"},
	},
}

// SeedAnnouncements inserts the demo categories and announcements in one
// transaction. It does nothing and returns false when any category exists.
func SeedAnnouncements(db *gorm.DB) (bool, error) {
	seeded := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.CategoryModel{}).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to count categories: %w", err)
		}
		if existing > 0 {
			return nil
		}

		categoryIDs := make(map[string]uint, len(seedCategories))
		for _, name := range seedCategories {
			category := models.CategoryModel{Name: name}
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to seed category %q: %w", name, err)
			}
			categoryIDs[name] = category.ID
		}

		for _, seed := range seedAnnouncements {
			publishedAt, err := time.Parse(time.RFC3339, seed.PublishedAt)
			if err != nil {
				return fmt.Errorf("invalid published_at for %q: %w", seed.Title, err)
			}

			announcement := models.AnnouncementModel{
				Title:       seed.Title,
				Content:     seed.Content,
				PublishedAt: &publishedAt,
			}
			if err := tx.Omit(clause.Associations).Create(&announcement).Error; err != nil {
				return fmt.Errorf("failed to seed announcement %q: %w", seed.Title, err)
			}

			links := make([]models.AnnouncementCategoryModel, 0, len(seed.Categories))
			for _, name := range seed.Categories {
				links = append(links, models.AnnouncementCategoryModel{
					AnnouncementID: announcement.ID,
					CategoryID:     categoryIDs[name],
				})
			}
			if err := tx.Create(&links).Error; err != nil {
				return fmt.Errorf("failed to link announcement %q: %w", seed.Title, err)
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}
