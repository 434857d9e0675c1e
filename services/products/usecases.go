package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ProductUseCase contains the business logic for product mutations. Create
// and update only commit after the referenced category resolves against the
// external category service.
type ProductUseCase struct {
	repository ProductRepository
	categories CategoryFetcher
	logger     *zap.Logger
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(
	repository ProductRepository,
	categories CategoryFetcher,
	logger *zap.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		repository: repository,
		categories: categories,
		logger:     logger,
	}
}

// ListProducts returns a snapshot of all products in insertion order.
func (uc *ProductUseCase) ListProducts(ctx context.Context) []Product {
	products := uc.repository.GetAll()
	uc.logger.Info("listed products", zap.Int("count", len(products)))
	return products
}

// GetProduct returns the product with the given ID.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id int) (Product, error) {
	product, err := uc.repository.GetByID(id)
	if err != nil {
		uc.logger.Warn("product not found", zap.Int("product_id", id))
		return Product{}, err
	}

	uc.logger.Info("fetched product", zap.Int("product_id", id))
	return product, nil
}

// CreateProduct validates the category reference and appends the product to
// the collection. The stored product, with its assigned ID, is returned.
//
// The category check and the insert are not transactional: a category
// deleted externally in between still lets the insert through.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, product *Product) (Product, error) {
	if product == nil {
		uc.logger.Warn("create rejected: product is nil")
		return Product{}, fmt.Errorf("%w: product is nil", ErrInvalidProduct)
	}

	category, err := uc.categories.GetCategoryByID(ctx, product.CategoryID)
	if err != nil {
		uc.logger.Warn("create rejected: category did not resolve",
			zap.Int("category_id", product.CategoryID),
			zap.Error(err),
		)
		return Product{}, fmt.Errorf("%w: %w", ErrCategoryReference, err)
	}

	uc.logger.Info("category resolved for create",
		zap.Int("category_id", category.ID),
		zap.String("category_name", category.Name),
	)

	uc.repository.Insert(product)
	uc.logger.Info("product created", zap.Int("product_id", product.ID))
	return *product, nil
}

// UpdateProduct validates the category reference and overwrites name,
// description, price and category of the matching product. The ID is never
// changed. Returns ErrProductNotFound when the target is absent.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, product Product) error {
	category, err := uc.categories.GetCategoryByID(ctx, product.CategoryID)
	if err != nil {
		uc.logger.Warn("update rejected: category did not resolve",
			zap.Int("product_id", product.ID),
			zap.Int("category_id", product.CategoryID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrCategoryReference, err)
	}

	uc.logger.Info("category resolved for update",
		zap.Int("category_id", category.ID),
		zap.String("category_name", category.Name),
	)

	if err := uc.repository.Update(product); err != nil {
		uc.logger.Warn("product not found for update", zap.Int("product_id", product.ID))
		return err
	}

	uc.logger.Info("product updated", zap.Int("product_id", product.ID))
	return nil
}

// DeleteProduct removes the product with the given ID and returns the
// removed count. Deleting an absent ID is a no-op, not an error.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id int) int {
	removed := uc.repository.Delete(id)
	if removed == 0 {
		uc.logger.Warn("product not found for deletion", zap.Int("product_id", id))
		return removed
	}

	uc.logger.Info("product deleted", zap.Int("product_id", id))
	return removed
}
