package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryCategoryRepository_GetByID(t *testing.T) {
	repo := NewInMemoryCategoryRepository()

	category, err := repo.GetByID(5)
	assert.NoError(t, err)
	assert.Equal(t, Category{ID: 5, Name: "Toys"}, category)

	_, err = repo.GetByID(42)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestInMemoryCategoryRepository_GetAllReturnsSnapshot(t *testing.T) {
	repo := NewInMemoryCategoryRepository()

	snapshot := repo.GetAll()
	snapshot[0].Name = "Tampered"

	stored, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "Electronics", stored.Name)
}
