package categories

import "context"

// Service defines the business logic interface for categories
// Also consumed by the post service to populate selection lists
type Service interface {
	// List returns every category, ordered by name
	List(ctx context.Context) ([]*Category, error)

	// Create adds a new category
	Create(ctx context.Context, req CreateCategoryRequest) (*Category, error)

	// GetByID retrieves a single category
	GetByID(ctx context.Context, id int64) (*Category, error)

	// Update renames an existing category
	Update(ctx context.Context, req UpdateCategoryRequest) (*Category, error)

	// Delete removes a category
	// Fails with ErrCategoryInUse while any post still references it
	Delete(ctx context.Context, id int64) error
}

// Repository defines the data access interface for categories
type Repository interface {
	GetAll(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	Create(ctx context.Context, category *Category) (*Category, error)
	Update(ctx context.Context, category *Category) (*Category, error)
	Delete(ctx context.Context, id int64) error
}
