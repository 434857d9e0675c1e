package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProductUseCaseInterface defines the interface for the use case
type ProductUseCaseInterface interface {
	ListProducts(ctx context.Context) []Product
	GetProduct(ctx context.Context, id int) (Product, error)
	CreateProduct(ctx context.Context, product *Product) (Product, error)
	UpdateProduct(ctx context.Context, product Product) error
	DeleteProduct(ctx context.Context, id int) int
}

// ProductHandler contains the HTTP handlers
type ProductHandler struct {
	useCase ProductUseCaseInterface
	tracer  trace.Tracer
}

// NewProductHandler creates a new ProductHandler instance
func NewProductHandler(useCase ProductUseCaseInterface, tracer trace.Tracer) *ProductHandler {
	return &ProductHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// ListProducts returns all products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "list_products")
	defer span.End()

	products := h.useCase.ListProducts(ctx)
	span.SetAttributes(attribute.Int("product_count", len(products)))

	c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product by ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_product")
	defer span.End()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	span.SetAttributes(attribute.Int("product_id", id))

	product, err := h.useCase.GetProduct(ctx, id)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct creates a new product after validating its category
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_product")
	defer span.End()

	// Bind through a pointer so a literal JSON null body stays nil instead
	// of decoding into a zero-value product.
	var product *Product
	if err := c.ShouldBindJSON(&product); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if product == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidProduct.Error()})
		return
	}

	span.SetAttributes(attribute.Int("category_id", product.CategoryID))

	created, err := h.useCase.CreateProduct(ctx, product)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(attribute.Int("product_id", created.ID))

	c.Header("Location", fmt.Sprintf("/api/products/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// UpdateProduct overwrites an existing product. Checks run in a fixed
// order: ID match, target existence, field validity.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "update_product")
	defer span.End()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	span.SetAttributes(attribute.Int("product_id", id))

	var product Product
	if err := c.ShouldBindJSON(&product); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if id != product.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id mismatch"})
		return
	}

	if _, err := h.useCase.GetProduct(ctx, id); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if product.Name == "" || product.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product data"})
		return
	}

	if err := h.useCase.UpdateProduct(ctx, product); err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteProduct removes a product by ID
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "delete_product")
	defer span.End()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	span.SetAttributes(attribute.Int("product_id", id))

	if removed := h.useCase.DeleteProduct(ctx, id); removed == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrProductNotFound.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck reports service health
func (h *ProductHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "products-service",
	})
}
