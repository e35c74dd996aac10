package view

import (
	"testing"
	"time"

	"github.com/brainsync/catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vid(title, instructor, category string, createdAt time.Time) models.Video {
	return models.Video{
		ID:          "id-" + title,
		Title:       title,
		Description: title + " description",
		Category:    category,
		Instructor:  instructor,
		CreatedAt:   createdAt,
	}
}

func TestApply_NoFilterReturnsEverything(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []models.Video{
		vid("Intro to Go", "Alice", "Programming", t1),
		vid("Color Theory", "Bob", "Design", t1.Add(time.Hour)),
		vid("Advanced Go", "Alice", "Programming", t1.Add(2*time.Hour)),
	}

	out := Apply(records, Query{Term: "", Category: CategoryAll, SortKey: "bogus"})

	require.Equal(t, records, out)
}

func TestApply_TermFiltersAcrossThreeFields(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []models.Video{
		{ID: "1", Title: "Intro to Go", Description: "basics", Instructor: "Alice", Category: "Programming", CreatedAt: t1},
		{ID: "2", Title: "Sketching", Description: "drawing with GOuache", Instructor: "Bob", Category: "Design", CreatedAt: t1},
		{ID: "3", Title: "Cooking", Description: "pasta", Instructor: "Margot", Category: "Food", CreatedAt: t1},
		{ID: "4", Title: "Knitting", Description: "wool", Instructor: "Carol", Category: "Craft", CreatedAt: t1},
	}

	out := Apply(records, Query{Term: "go", Category: CategoryAll})

	ids := make([]string, 0, len(out))
	for _, v := range out {
		ids = append(ids, v.ID)
	}
	// title, description и instructor матчатся без учёта регистра
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestApply_TermWithoutMatchYieldsEmpty(t *testing.T) {
	t1 := time.Now()
	records := []models.Video{
		vid("Intro to Go", "Alice", "Programming", t1),
		vid("Color Theory", "Bob", "Design", t1),
	}

	out := Apply(records, Query{Term: "quantum", Category: CategoryAll})

	assert.Empty(t, out)
}

func TestApply_CategoryExactCaseSensitive(t *testing.T) {
	t1 := time.Now()
	records := []models.Video{
		vid("Intro to Go", "Alice", "Programming", t1),
		vid("Color Theory", "Bob", "programming", t1),
	}

	out := Apply(records, Query{Category: "Programming"})

	require.Len(t, out, 1)
	assert.Equal(t, "Intro to Go", out[0].Title)
}

func TestApply_SortNewest(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	records := []models.Video{
		vid("Intro to Go", "Alice", "Programming", t1),
		vid("Advanced Go", "Alice", "Programming", t2),
	}

	out := Apply(records, Query{Term: "go", Category: CategoryAll, SortKey: SortNewest})

	require.Len(t, out, 2)
	assert.Equal(t, "Advanced Go", out[0].Title)
	assert.Equal(t, "Intro to Go", out[1].Title)
}

func TestApply_SortOldest(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []models.Video{
		vid("B", "x", "c", t1.Add(time.Hour)),
		vid("A", "x", "c", t1),
		vid("C", "x", "c", t1.Add(2*time.Hour)),
	}

	out := Apply(records, Query{SortKey: SortOldest})

	assert.Equal(t, "A", out[0].Title)
	assert.Equal(t, "B", out[1].Title)
	assert.Equal(t, "C", out[2].Title)
}

func TestApply_SortTitleAscendingAndIdempotent(t *testing.T) {
	t1 := time.Now()
	records := []models.Video{
		vid("banana", "x", "c", t1),
		vid("Apple", "x", "c", t1),
		vid("cherry", "x", "c", t1),
	}

	q := Query{SortKey: SortTitle}
	once := Apply(records, q)

	require.Len(t, once, 3)
	assert.Equal(t, "Apple", once[0].Title)
	assert.Equal(t, "banana", once[1].Title)
	assert.Equal(t, "cherry", once[2].Title)

	twice := Apply(once, q)
	assert.Equal(t, once, twice)
}

func TestApply_SortInstructor(t *testing.T) {
	t1 := time.Now()
	records := []models.Video{
		vid("a", "zoe", "c", t1),
		vid("b", "Adam", "c", t1),
	}

	out := Apply(records, Query{SortKey: SortInstructor})

	assert.Equal(t, "Adam", out[0].Instructor)
	assert.Equal(t, "zoe", out[1].Instructor)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []models.Video{
		vid("zeta", "x", "c", t1),
		vid("alpha", "x", "c", t1.Add(time.Hour)),
	}
	snapshot := make([]models.Video, len(records))
	copy(snapshot, records)

	_ = Apply(records, Query{SortKey: SortTitle})

	assert.Equal(t, snapshot, records)
}

func TestApply_SameInputSameOutput(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []models.Video{
		vid("Intro to Go", "Alice", "Programming", t1),
		vid("Advanced Go", "Alice", "Programming", t1.Add(time.Hour)),
		vid("Color Theory", "Bob", "Design", t1.Add(2*time.Hour)),
	}
	q := Query{Term: "o", Category: CategoryAll, SortKey: SortTitle}

	assert.Equal(t, Apply(records, q), Apply(records, q))
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	t1 := time.Now()
	records := []models.Video{
		vid("1", "x", "A", t1),
		vid("2", "x", "B", t1),
		vid("3", "x", "A", t1),
		vid("4", "x", "C", t1),
	}

	assert.Equal(t, []string{"all", "A", "B", "C"}, Categories(records))
}

func TestCategories_EmptyCatalog(t *testing.T) {
	assert.Equal(t, []string{"all"}, Categories(nil))
}
