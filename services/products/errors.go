package main

import "errors"

// Error kinds surfaced by the repository, the category client and the use
// case. Callers match them with errors.Is; wrapping with %w preserves the
// inner kind, so a ErrCategoryReference still reports whether the underlying
// failure was a fetch, decode or not-found problem.
var (
	// ErrInvalidProduct indicates malformed or missing product input.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryFetch indicates a transport failure or a non-2xx status
	// from the category service.
	ErrCategoryFetch = errors.New("failed to fetch category")

	// ErrCategoryDecode indicates a 2xx response whose body could not be
	// decoded as a category.
	ErrCategoryDecode = errors.New("failed to decode category response")

	// ErrCategoryNotFound indicates the category service answered with an
	// empty category.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryReference indicates a product mutation was rejected
	// because its category reference did not resolve.
	ErrCategoryReference = errors.New("category reference did not resolve")
)
