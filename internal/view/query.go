package view

import (
	"sort"
	"strings"

	"github.com/brainsync/catalog/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const CategoryAll = "all"

const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortTitle      = "title"
	SortInstructor = "instructor"
)

type Query struct {
	Term     string
	Category string // точное совпадение; "all" или пусто — без фильтра
	SortKey  string
}

// Apply прогоняет каталог через фильтр и сортировку запроса.
// Вход не мутируется, результат всегда свежий слайс.
func Apply(records []models.Video, q Query) []models.Video {
	out := make([]models.Video, 0, len(records))

	term := strings.ToLower(q.Term)
	for _, v := range records {
		if term != "" &&
			!strings.Contains(strings.ToLower(v.Title), term) &&
			!strings.Contains(strings.ToLower(v.Description), term) &&
			!strings.Contains(strings.ToLower(v.Instructor), term) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && v.Category != q.Category {
			continue
		}
		out = append(out, v)
	}

	switch q.SortKey {
	case SortNewest:
		sort.Slice(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortOldest:
		sort.Slice(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortTitle:
		c := newCollator()
		sort.Slice(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortInstructor:
		c := newCollator()
		sort.Slice(out, func(i, j int) bool {
			return c.CompareString(out[i].Instructor, out[j].Instructor) < 0
		})
	default:
		// неизвестный ключ — отдаём отфильтрованное как есть
	}

	return out
}

// Categories строит список для селекта: "all" первым, дальше категории
// в порядке первого появления в каталоге.
func Categories(records []models.Video) []string {
	categories := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, v := range records {
		if seen[v.Category] {
			continue
		}
		seen[v.Category] = true
		categories = append(categories, v.Category)
	}
	return categories
}

// Collator не потокобезопасен, поэтому на каждый вызов свой.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}
