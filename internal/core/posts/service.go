package posts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"Tabloid/internal/core/categories"
	"Tabloid/internal/core/tags"
)

// Content limits for post submissions
const (
	maxTitleLength   = 200
	maxContentLength = 100000
)

type postService struct {
	repo            Repository
	categoryService categories.Service
	approve         ApprovalPolicy
}

// NewPostService creates a new post service.
// approve may be nil, in which case posts are published at creation.
func NewPostService(repo Repository, categoryService categories.Service, approve ApprovalPolicy) Service {
	if approve == nil {
		approve = PublishOnCreate
	}
	return &postService{
		repo:            repo,
		categoryService: categoryService,
		approve:         approve,
	}
}

func (s *postService) ListPublished(ctx context.Context, viewerID int64) (*Feed, error) {
	published, err := s.repo.GetAllPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	if published == nil {
		published = []*Post{}
	}

	return &Feed{ViewerID: viewerID, Posts: published}, nil
}

// GetVisible implements the two-stage visibility rule: published content
// is globally readable; drafts are readable only by their author.
func (s *postService) GetVisible(ctx context.Context, postID, viewerID int64) (*Post, error) {
	post, err := s.repo.GetPublishedByID(ctx, postID)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, ErrPostNotFound) {
		return nil, fmt.Errorf("failed to get published post %d: %w", postID, err)
	}

	// Not published (or absent): the viewer may still be looking at their
	// own draft
	post, err = s.repo.GetByIDAndAuthor(ctx, postID, viewerID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get owned post %d: %w", postID, err)
	}

	return post, nil
}

func (s *postService) NewPostForm(ctx context.Context) (*CreatePostForm, error) {
	options, err := s.categoryService.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category options: %w", err)
	}

	return &CreatePostForm{CategoryOptions: options}, nil
}

func (s *postService) Create(ctx context.Context, req CreatePostRequest, authorID int64) (*Post, error) {
	if authorID <= 0 {
		return nil, NewValidationError("authorId", "authorId must come from the authenticated user")
	}
	if err := validateContent(req.Title, req.Content); err != nil {
		return nil, err
	}

	// Owner and timestamp are stamped here; any owner value the caller
	// supplied in the request is discarded
	post := &Post{
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		CategoryID: req.CategoryID,
		CreatedAt:  time.Now().UTC(),
		AuthorID:   authorID,
	}
	post.Published = s.approve(post)

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		if IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

func (s *postService) ListOwned(ctx context.Context, ownerID int64) ([]*Post, error) {
	owned, err := s.repo.GetAllByAuthor(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for user %d: %w", ownerID, err)
	}
	if owned == nil {
		owned = []*Post{}
	}

	return owned, nil
}

func (s *postService) GetOwnedForEdit(ctx context.Context, postID, ownerID int64) (*Post, error) {
	return s.getOwned(ctx, postID, ownerID)
}

func (s *postService) GetOwnedForDelete(ctx context.Context, postID, ownerID int64) (*Post, error) {
	return s.getOwned(ctx, postID, ownerID)
}

func (s *postService) getOwned(ctx context.Context, postID, ownerID int64) (*Post, error) {
	post, err := s.repo.GetByIDAndAuthor(ctx, postID, ownerID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post %d for user %d: %w", postID, ownerID, err)
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, req UpdatePostRequest, actorID int64) (*Post, error) {
	if err := validateContent(req.Title, req.Content); err != nil {
		return nil, err
	}

	stored, err := s.verifyOwnership(ctx, req.ID, actorID)
	if err != nil {
		return nil, err
	}

	// CreatedAt, AuthorID and Published carry over from the stored record;
	// edits cannot move a post between owners or flip its visibility
	updated := *stored
	updated.Title = strings.TrimSpace(req.Title)
	updated.Content = req.Content
	updated.CategoryID = req.CategoryID

	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		if IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update post %d: %w", req.ID, err)
	}

	return result, nil
}

func (s *postService) Delete(ctx context.Context, postID, actorID int64) error {
	if _, err := s.verifyOwnership(ctx, postID, actorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to delete post %d: %w", postID, err)
	}

	return nil
}

func (s *postService) AttachTag(ctx context.Context, postID, tagID, actorID int64) error {
	if _, err := s.getOwned(ctx, postID, actorID); err != nil {
		return err
	}

	if err := s.repo.AttachTag(ctx, postID, tagID); err != nil {
		if errors.Is(err, ErrTagAlreadyAttached) || IsNotFound(err) || IsValidationError(err) {
			return err
		}
		return fmt.Errorf("failed to attach tag %d to post %d: %w", tagID, postID, err)
	}

	return nil
}

func (s *postService) DetachTag(ctx context.Context, postID, tagID, actorID int64) error {
	if _, err := s.getOwned(ctx, postID, actorID); err != nil {
		return err
	}

	if err := s.repo.DetachTag(ctx, postID, tagID); err != nil {
		if errors.Is(err, ErrTagNotAttached) {
			return err
		}
		return fmt.Errorf("failed to detach tag %d from post %d: %w", tagID, postID, err)
	}

	return nil
}

func (s *postService) ListTags(ctx context.Context, postID, viewerID int64) ([]*tags.Tag, error) {
	// Same visibility gate as reading the post itself
	if _, err := s.GetVisible(ctx, postID, viewerID); err != nil {
		return nil, err
	}

	attached, err := s.repo.GetTags(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags for post %d: %w", postID, err)
	}
	if attached == nil {
		attached = []*tags.Tag{}
	}

	return attached, nil
}

// verifyOwnership loads the stored post and checks the acting identity
// against its recorded owner immediately before a write. The ownership
// gate at form load alone is not enough: a forged request could otherwise
// write to a record its sender never owned.
func (s *postService) verifyOwnership(ctx context.Context, postID, actorID int64) (*Post, error) {
	stored, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load post %d for ownership check: %w", postID, err)
	}

	if stored.AuthorID != actorID {
		log.Printf("[SECURITY] ownership mismatch on post %d: owner=%d actor=%d",
			postID, stored.AuthorID, actorID)
		return nil, ErrPostNotFound
	}

	return stored, nil
}

func validateContent(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "title is required")
	}
	if len(title) > maxTitleLength {
		return NewValidationError("title",
			fmt.Sprintf("title too long (max %d characters)", maxTitleLength))
	}
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "content is required")
	}
	if len(content) > maxContentLength {
		return NewValidationError("content",
			fmt.Sprintf("content too long (max %d characters)", maxContentLength))
	}
	return nil
}
