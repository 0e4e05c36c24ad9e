package models

import (
	"time"

	"noticeboard/internal/shared/constants"
)

type AnnouncementModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:1000;not null"`
	Content     string `gorm:"type:text;not null"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Categories is read-only through gorm: writes go through
	// AnnouncementCategoryModel so association upserts never touch category rows.
	Categories []CategoryModel `gorm:"many2many:announcement_to_category;joinForeignKey:AnnouncementID;joinReferences:CategoryID"`
}

func (AnnouncementModel) TableName() string {
	return constants.TableAnnouncement
}
