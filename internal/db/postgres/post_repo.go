package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"Tabloid/internal/core/posts"
	"Tabloid/internal/core/tags"
)

// Postgres error codes for constraint violations
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

const postColumns = `id, title, content, created_at, published, author_id, category_id`

func scanPost(row interface{ Scan(...any) error }) (*posts.Post, error) {
	post := &posts.Post{}
	var categoryID sql.NullInt64

	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt,
		&post.Published, &post.AuthorID, &categoryID)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		post.CategoryID = &categoryID.Int64
	}
	return post, nil
}

// GetAllPublished returns every published post, newest first
func (r *postgresPostRepo) GetAllPublished(ctx context.Context) ([]*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE published = true ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query published posts: %w", err)
	}
	defer closeRows(rows)

	return collectPosts(rows)
}

// GetPublishedByID returns the post only if it is published
func (r *postgresPostRepo) GetPublishedByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1 AND published = true`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get published post: %w", err)
	}

	return post, nil
}

// GetAllByAuthor returns every post owned by the author, drafts included
func (r *postgresPostRepo) GetAllByAuthor(ctx context.Context, authorID int64) ([]*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE author_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts by author: %w", err)
	}
	defer closeRows(rows)

	return collectPosts(rows)
}

// GetByIDAndAuthor returns the post only if owned by the author
func (r *postgresPostRepo) GetByIDAndAuthor(ctx context.Context, id, authorID int64) (*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1 AND author_id = $2`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id, authorID))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id and author: %w", err)
	}

	return post, nil
}

// GetByID returns the post regardless of published state or owner
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// Create inserts a new post and returns it with the assigned id
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (title, content, created_at, published, author_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + postColumns

	created, err := scanPost(r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.CreatedAt, post.Published, post.AuthorID,
		nullableID(post.CategoryID)))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			// posts_category_id_fkey: the selected category no longer exists
			return nil, posts.NewValidationError("categoryId", "category does not exist")
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

// Update persists title, content and category by id
// Author, creation time and published state are deliberately not writable here
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET title = $2, content = $3, category_id = $4
		WHERE id = $1
		RETURNING ` + postColumns

	updated, err := scanPost(r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Content, nullableID(post.CategoryID)))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return nil, posts.NewValidationError("categoryId", "category does not exist")
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

// Delete removes the post by id; post_tags rows cascade
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// AttachTag links a tag to a post
func (r *postgresPostRepo) AttachTag(ctx context.Context, postID, tagID int64) error {
	query := `INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, postID, tagID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pqUniqueViolation:
				return posts.ErrTagAlreadyAttached
			case pqForeignKeyViolation:
				if pqErr.Constraint == "post_tags_tag_id_fkey" {
					return posts.NewValidationError("tagId", "tag does not exist")
				}
				return posts.ErrPostNotFound
			}
		}
		return fmt.Errorf("failed to attach tag: %w", err)
	}

	return nil
}

// DetachTag unlinks a tag from a post
func (r *postgresPostRepo) DetachTag(ctx context.Context, postID, tagID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM post_tags WHERE post_id = $1 AND tag_id = $2`, postID, tagID)
	if err != nil {
		return fmt.Errorf("failed to detach tag: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return posts.ErrTagNotAttached
	}

	return nil
}

// GetTags returns the tags attached to a post, ordered by name
func (r *postgresPostRepo) GetTags(ctx context.Context, postID int64) ([]*tags.Tag, error) {
	query := `
		SELECT t.id, t.name
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.name`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query post tags: %w", err)
	}
	defer closeRows(rows)

	var result []*tags.Tag
	for rows.Next() {
		tag := &tags.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		result = append(result, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return result, nil
}

func collectPosts(rows *sql.Rows) ([]*posts.Post, error) {
	var result []*posts.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}
	return result, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Warn("failed to close rows", slog.String("error", err.Error()))
	}
}
