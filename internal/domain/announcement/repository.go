package announcement

import "context"

// AnnouncementRepository persists announcements and their category links.
// Implementations pick up the transaction carried by ctx when there is one.
type AnnouncementRepository interface {
	// Create inserts the row and one association row per category reference,
	// then sets the generated ID on the announcement.
	Create(ctx context.Context, announcement *Announcement) error
	// GetByID returns the hydrated announcement or a wrapped gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id uint) (*Announcement, error)
	// List returns hydrated announcements in ascending id order.
	List(ctx context.Context, limit, offset int) ([]*Announcement, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// Update writes the patched scalars and bumps updated_at.
	Update(ctx context.Context, id uint, patch Patch) error
	// ReplaceCategories drops every association of the announcement and links
	// it to categoryIDs instead.
	ReplaceCategories(ctx context.Context, id uint, categoryIDs []uint) error
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, category *Category) error
	// GetByID returns the category or a wrapped gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id uint) (*Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// Update writes the name when given and bumps updated_at.
	Update(ctx context.Context, id uint, name *string) error
	Delete(ctx context.Context, id uint) error
}
