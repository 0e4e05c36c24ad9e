package announcement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAnnouncement(t *testing.T) {
	published := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	a := NewAnnouncement("Road works", "Main street closed", &published, []uint{3, 1, 3})

	assert.Zero(t, a.ID)
	assert.Equal(t, "Road works", a.Title)
	assert.Equal(t, "Main street closed", a.Content)
	assert.Equal(t, &published, a.PublishedAt)
	assert.Equal(t, []uint{3, 1}, a.CategoryIDs())
}

func TestCategoryRefs(t *testing.T) {
	tests := []struct {
		name string
		ids  []uint
		want []Category
	}{
		{name: "nil", ids: nil, want: []Category{}},
		{name: "keeps order", ids: []uint{2, 1}, want: []Category{{ID: 2}, {ID: 1}}},
		{name: "drops duplicates", ids: []uint{1, 1, 2, 1}, want: []Category{{ID: 1}, {ID: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryRefs(tt.ids))
		})
	}
}

func TestPatch_IsEmpty(t *testing.T) {
	title := "x"
	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{Title: &title}.IsEmpty())
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint{2, 1}, UniqueIDs([]uint{2, 1, 2, 2}))
	assert.Empty(t, UniqueIDs(nil))
}
