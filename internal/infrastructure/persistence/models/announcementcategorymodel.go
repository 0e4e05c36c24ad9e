package models

import "noticeboard/internal/shared/constants"

// AnnouncementCategoryModel is one row of the announcement/category join table.
type AnnouncementCategoryModel struct {
	AnnouncementID uint `gorm:"primaryKey"`
	CategoryID     uint `gorm:"primaryKey;index"`
}

func (AnnouncementCategoryModel) TableName() string {
	return constants.TableAnnouncementToCategory
}
