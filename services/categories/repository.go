package main

import "errors"

// ErrCategoryNotFound indicates the requested category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines read access to the category collection.
type CategoryRepository interface {
	GetAll() []Category
	GetByID(id int) (Category, error)
}

// InMemoryCategoryRepository holds a fixed category set in process memory.
// Categories are read-only; consumers only resolve references against them.
type InMemoryCategoryRepository struct {
	categories []Category
}

// NewInMemoryCategoryRepository creates a repository seeded with the
// default category set.
func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: []Category{
			{ID: 1, Name: "Electronics"},
			{ID: 2, Name: "Books"},
			{ID: 3, Name: "Clothing"},
			{ID: 4, Name: "Home & Garden"},
			{ID: 5, Name: "Toys"},
		},
	}
}

// GetAll returns a copied snapshot of all categories.
func (r *InMemoryCategoryRepository) GetAll() []Category {
	snapshot := make([]Category, len(r.categories))
	copy(snapshot, r.categories)
	return snapshot
}

// GetByID returns the category with the given ID.
func (r *InMemoryCategoryRepository) GetByID(id int) (Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, ErrCategoryNotFound
}
