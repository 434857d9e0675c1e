package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
)

func TestCategoryClient_GetCategoryByID(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		expected    Category
		expectedErr error
	}{
		{
			name:     "success",
			status:   http.StatusOK,
			body:     `{"id": 5, "name": "Toys"}`,
			expected: Category{ID: 5, Name: "Toys"},
		},
		{
			name:        "not found status",
			status:      http.StatusNotFound,
			body:        `{"error": "category not found"}`,
			expectedErr: ErrCategoryFetch,
		},
		{
			name:        "server error status",
			status:      http.StatusInternalServerError,
			body:        ``,
			expectedErr: ErrCategoryFetch,
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `{"id": "not-a-number"`,
			expectedErr: ErrCategoryDecode,
		},
		{
			name:        "null body",
			status:      http.StatusOK,
			body:        `null`,
			expectedErr: ErrCategoryNotFound,
		},
		{
			name:        "empty object body",
			status:      http.StatusOK,
			body:        `{}`,
			expectedErr: ErrCategoryNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/categories/5", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewCategoryClient(resty.New(), srv.URL)

			category, err := client.GetCategoryByID(context.Background(), 5)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, category)
		})
	}
}

func TestCategoryClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // no listener behind the URL anymore

	client := NewCategoryClient(resty.New(), srv.URL)

	_, err := client.GetCategoryByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrCategoryFetch)
}
