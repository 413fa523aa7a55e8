package posts

import (
	"time"

	"Tabloid/internal/core/categories"
)

// Post is an authored article. AuthorID and CreatedAt are stamped by the
// service at creation and never change afterwards; Published gates global
// visibility (unpublished posts are drafts visible only to their author).
type Post struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	Published  bool      `json:"published" db:"published"`
	AuthorID   int64     `json:"authorId" db:"author_id"`
	CategoryID *int64    `json:"categoryId,omitempty" db:"category_id"`
}

// Feed pairs the published posts with the viewer's identity so the
// presentation layer can decide whether to expose edit/delete affordances
// per post without a second request.
type Feed struct {
	ViewerID int64   `json:"viewerId"`
	Posts    []*Post `json:"posts"`
}

// CreatePostForm is the blank creation form, pre-populated with the
// current category options for selection-list rendering.
type CreatePostForm struct {
	CategoryOptions []*categories.Category `json:"categoryOptions"`
}

// CreatePostRequest represents the input for creating a new post.
// AuthorID must not be supplied by the client; the service stamps it from
// the authenticated identity regardless of what the request carries.
type CreatePostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID *int64 `json:"categoryId,omitempty"`
	AuthorID   int64  `json:"authorId,omitempty"`
}

// UpdatePostRequest represents the input for editing an existing post.
// Only title, content and category are writable; author, creation time
// and published state are preserved from the stored record.
type UpdatePostRequest struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID *int64 `json:"categoryId,omitempty"`
}
