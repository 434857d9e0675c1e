package main

import "testing"

func TestNewProduct(t *testing.T) {
	// Arrange
	name := "Widget"
	description := "A useful widget"
	price := 9.99
	categoryID := 5

	// Act
	product := NewProduct(name, description, price, categoryID)

	// Assert
	if product.ID != 0 {
		t.Errorf("Expected ID to be unassigned (0), got %d", product.ID)
	}
	if product.Name != name {
		t.Errorf("Expected Name %s, got %s", name, product.Name)
	}
	if product.Description != description {
		t.Errorf("Expected Description %s, got %s", description, product.Description)
	}
	if product.Price != price {
		t.Errorf("Expected Price %f, got %f", price, product.Price)
	}
	if product.CategoryID != categoryID {
		t.Errorf("Expected CategoryID %d, got %d", categoryID, product.CategoryID)
	}
}
