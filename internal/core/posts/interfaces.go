package posts

import (
	"context"

	"Tabloid/internal/core/tags"
)

// ApprovalPolicy decides whether a newly created post is published
// immediately or held as a draft. Injected into the service so the
// publish-at-creation rule stays visible and testable.
type ApprovalPolicy func(p *Post) bool

// PublishOnCreate publishes every post at creation time.
// This reproduces the platform's current moderation-free behavior.
func PublishOnCreate(_ *Post) bool { return true }

// HoldForReview keeps every new post as a draft until approved elsewhere.
func HoldForReview(_ *Post) bool { return false }

// Service defines the business logic interface for posts.
// Identity is always an explicit argument, never read from ambient state;
// handlers extract it once at the boundary and thread it through.
type Service interface {
	// ListPublished returns every published post paired with the viewer
	// identity. An empty store yields an empty feed, not an error.
	ListPublished(ctx context.Context, viewerID int64) (*Feed, error)

	// GetVisible fetches a published post by id regardless of owner; on a
	// miss it falls back to an owner-scoped lookup so authors can view
	// their own drafts. Both lookups missing yields ErrPostNotFound.
	GetVisible(ctx context.Context, postID, viewerID int64) (*Post, error)

	// NewPostForm returns a blank creation form with category options.
	NewPostForm(ctx context.Context) (*CreatePostForm, error)

	// Create validates the request, stamps CreatedAt, Published (via the
	// approval policy) and AuthorID (from authorID, ignoring any value in
	// the request), and persists the post in a single write.
	Create(ctx context.Context, req CreatePostRequest, authorID int64) (*Post, error)

	// ListOwned returns every post owned by the identity, drafts included.
	ListOwned(ctx context.Context, ownerID int64) ([]*Post, error)

	// GetOwnedForEdit fetches a post only if owned by ownerID; missing or
	// foreign posts both yield ErrPostNotFound. Gates the edit form.
	GetOwnedForEdit(ctx context.Context, postID, ownerID int64) (*Post, error)

	// Update persists new title/content/category. Ownership is re-verified
	// against the stored record at the point of write, not just at form
	// load; CreatedAt, AuthorID and Published are preserved.
	Update(ctx context.Context, req UpdatePostRequest, actorID int64) (*Post, error)

	// GetOwnedForDelete fetches a post for the delete confirmation with
	// the same gating as GetOwnedForEdit.
	GetOwnedForDelete(ctx context.Context, postID, ownerID int64) (*Post, error)

	// Delete removes the post after re-verifying ownership at the point
	// of delete.
	Delete(ctx context.Context, postID, actorID int64) error

	// AttachTag links a tag to a post the actor owns. Attaching a tag
	// twice yields ErrTagAlreadyAttached.
	AttachTag(ctx context.Context, postID, tagID, actorID int64) error

	// DetachTag removes a tag from a post the actor owns.
	DetachTag(ctx context.Context, postID, tagID, actorID int64) error

	// ListTags returns the tags attached to a post visible to the viewer.
	ListTags(ctx context.Context, postID, viewerID int64) ([]*tags.Tag, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// GetAllPublished returns posts with published = true, newest first
	GetAllPublished(ctx context.Context) ([]*Post, error)

	// GetPublishedByID returns the post only if published
	GetPublishedByID(ctx context.Context, id int64) (*Post, error)

	// GetAllByAuthor returns every post owned by the author, drafts included
	GetAllByAuthor(ctx context.Context, authorID int64) ([]*Post, error)

	// GetByIDAndAuthor returns the post only if owned by the author
	GetByIDAndAuthor(ctx context.Context, id, authorID int64) (*Post, error)

	// GetByID returns the post regardless of state; used for the
	// write-time ownership re-check
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Create inserts the post and returns it with the assigned id
	Create(ctx context.Context, post *Post) (*Post, error)

	// Update persists title, content and category by id
	Update(ctx context.Context, post *Post) (*Post, error)

	// Delete removes the post by id
	Delete(ctx context.Context, id int64) error

	// AttachTag links a tag to a post; duplicates yield ErrTagAlreadyAttached
	AttachTag(ctx context.Context, postID, tagID int64) error

	// DetachTag unlinks a tag; missing links yield ErrTagNotAttached
	DetachTag(ctx context.Context, postID, tagID int64) error

	// GetTags returns the tags attached to a post, ordered by name
	GetTags(ctx context.Context, postID int64) ([]*tags.Tag, error)
}
