package main

import "sync"

// ProductRepository defines the operations on the product collection.
type ProductRepository interface {
	// GetAll returns a snapshot of all products in insertion order.
	GetAll() []Product

	// GetByID returns the product with the given ID.
	GetByID(id int) (Product, error)

	// Insert assigns the next sequential ID to the product and appends it
	// to the collection. The assigned ID is returned through the product.
	Insert(product *Product)

	// Update overwrites name, description, price and category of the
	// product with the matching ID. The ID itself never changes.
	Update(product Product) error

	// Delete removes the product with the given ID and returns the number
	// of removed records (0 or 1). Deleting an absent ID is not an error.
	Delete(id int) int
}

// InMemoryProductRepository holds products in process memory. State is lost
// on restart. The mutex serializes access because the HTTP server handles
// requests concurrently; IDs are never reused, even after deletes.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []Product
	nextID   int
}

// NewInMemoryProductRepository creates an empty in-memory repository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		nextID: 1,
	}
}

// GetAll returns a copied snapshot of all products in insertion order.
func (r *InMemoryProductRepository) GetAll() []Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]Product, len(r.products))
	copy(snapshot, r.products)
	return snapshot
}

// GetByID returns the product with the given ID.
func (r *InMemoryProductRepository) GetByID(id int) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

// Insert assigns the next sequential ID to the product and appends it.
func (r *InMemoryProductRepository) Insert(product *Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, *product)
}

// Update overwrites all fields but the ID of the matching product.
func (r *InMemoryProductRepository) Update(product Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i].Name = product.Name
			r.products[i].Description = product.Description
			r.products[i].Price = product.Price
			r.products[i].CategoryID = product.CategoryID
			return nil
		}
	}
	return ErrProductNotFound
}

// Delete removes the matching product and returns the removed count.
func (r *InMemoryProductRepository) Delete(id int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return 1
		}
	}
	return 0
}
