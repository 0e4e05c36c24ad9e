// Package announcement holds the noticeboard domain: announcements, the
// categories they are filed under and the storage contracts for both.
package announcement

import (
	"time"
)

// Category is a named bucket announcements are filed under. Names are unique.
type Category struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Announcement is a notice with its hydrated category set.
type Announcement struct {
	ID          uint
	Title       string
	Content     string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Categories  []Category
}

// NewAnnouncement builds an unsaved announcement whose categories are bare
// references to the given ids. The ids are not checked for existence here.
func NewAnnouncement(title, content string, publishedAt *time.Time, categoryIDs []uint) *Announcement {
	return &Announcement{
		Title:       title,
		Content:     content,
		PublishedAt: publishedAt,
		Categories:  CategoryRefs(categoryIDs),
	}
}

// CategoryRefs turns ids into category references, dropping duplicates while
// keeping first-seen order.
func CategoryRefs(ids []uint) []Category {
	unique := UniqueIDs(ids)
	refs := make([]Category, 0, len(unique))
	for _, id := range unique {
		refs = append(refs, Category{ID: id})
	}
	return refs
}

// UniqueIDs drops repeated ids, keeping first-seen order.
func UniqueIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// CategoryIDs returns the ids of the association set.
func (a *Announcement) CategoryIDs() []uint {
	ids := make([]uint, 0, len(a.Categories))
	for _, c := range a.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// Patch carries the scalar fields of a partial announcement update. Nil
// fields are left untouched.
type Patch struct {
	Title       *string
	Content     *string
	PublishedAt *time.Time
}

// IsEmpty reports whether the patch changes no scalar field.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.PublishedAt == nil
}
