package tags

import "context"

// Service defines the business logic interface for tags
type Service interface {
	// List returns every tag, ordered by name
	List(ctx context.Context) ([]*Tag, error)

	// Create adds a new tag
	Create(ctx context.Context, req CreateTagRequest) (*Tag, error)

	// GetByID retrieves a single tag
	GetByID(ctx context.Context, id int64) (*Tag, error)

	// Update renames an existing tag
	Update(ctx context.Context, req UpdateTagRequest) (*Tag, error)

	// Delete removes a tag
	// Fails with ErrTagInUse while the tag is attached to any post, so the
	// boundary can render a specific "cannot delete" response
	Delete(ctx context.Context, id int64) error
}

// Repository defines the data access interface for tags
// Delete must surface the in-use case as ErrTagInUse, not a generic failure
type Repository interface {
	GetAll(ctx context.Context) ([]*Tag, error)
	GetByID(ctx context.Context, id int64) (*Tag, error)
	Create(ctx context.Context, tag *Tag) (*Tag, error)
	Update(ctx context.Context, tag *Tag) (*Tag, error)
	Delete(ctx context.Context, id int64) error
}
