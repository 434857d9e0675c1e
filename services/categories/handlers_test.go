package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCategoryHandler(NewInMemoryCategoryRepository(), zap.NewNop())

	r := gin.New()
	r.GET("/api/v1/categories", handler.ListCategories)
	r.GET("/api/v1/categories/:id", handler.GetCategory)
	return r
}

func TestListCategoriesHandler(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []Category
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&categories))
	assert.Len(t, categories, 5)
	assert.Equal(t, "Electronics", categories[0].Name)
}

func TestGetCategoryHandler(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		expectedCode int
		expectedName string
	}{
		{name: "found", path: "/api/v1/categories/5", expectedCode: http.StatusOK, expectedName: "Toys"},
		{name: "not found", path: "/api/v1/categories/42", expectedCode: http.StatusNotFound},
		{name: "non-integer id", path: "/api/v1/categories/abc", expectedCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter()

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedName != "" {
				var category Category
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&category))
				assert.Equal(t, tc.expectedName, category.Name)
			}
		})
	}
}
