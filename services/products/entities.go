package main

// Product represents a catalog product managed by this service
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int     `json:"category_id"`
}

// NewProduct creates a new Product without an assigned ID.
// The repository assigns the ID when the product is inserted.
func NewProduct(name, description string, price float64, categoryID int) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
	}
}

// Category represents a category owned by the external category service.
// This service only reads categories to validate product references.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
