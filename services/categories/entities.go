package main

// Category represents a category owned by this service
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
