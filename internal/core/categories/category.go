package categories

// Category is a reference record posts point at; selection lists on the
// post creation form are built from the full set.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CreateCategoryRequest represents the input for creating a new category
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest represents the input for renaming a category
type UpdateCategoryRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
