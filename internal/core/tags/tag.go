package tags

// Tag is a label shared across posts through the post_tags association.
// A tag attached to at least one post cannot be deleted.
type Tag struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CreateTagRequest represents the input for creating a new tag
type CreateTagRequest struct {
	Name string `json:"name"`
}

// UpdateTagRequest represents the input for renaming a tag
type UpdateTagRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
