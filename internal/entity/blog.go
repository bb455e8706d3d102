package entity

import (
	"fmt"
	"time"
)

// Category is the fixed set of blog categories. Values outside this set are
// rejected at construction time via ParseCategory.
type Category string

const (
	CategoryCareer     Category = "Career"
	CategoryFinance    Category = "Finance"
	CategoryTravel     Category = "Travel"
	CategoryTechnology Category = "Technology"
	CategoryHealth     Category = "Health"
	CategoryOther      Category = "Other"
)

var validCategories = map[Category]struct{}{
	CategoryCareer:     {},
	CategoryFinance:    {},
	CategoryTravel:     {},
	CategoryTechnology: {},
	CategoryHealth:     {},
	CategoryOther:      {},
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := validCategories[c]; !ok {
		return "", fmt.Errorf("unknown blog category %q", s)
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

type Blog struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Category  Category  `db:"category"`
	Author    string    `db:"author"`
	Content   string    `db:"content"`
	Image     string    `db:"image"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
