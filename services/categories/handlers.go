package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryHandler contains the HTTP handlers
type CategoryHandler struct {
	repository CategoryRepository
	logger     *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(repository CategoryRepository, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		repository: repository,
		logger:     logger,
	}
}

// ListCategories returns all categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.repository.GetAll())
}

// GetCategory returns a single category by ID
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	category, err := h.repository.GetByID(id)
	if err != nil {
		h.logger.Warn("category not found", zap.Int("category_id", id))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// HealthCheck reports service health
func (h *CategoryHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "categories-service",
	})
}
