package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"Tabloid/internal/core/tags"
)

type postgresTagRepo struct {
	db *sql.DB
}

// NewTagRepository creates a new PostgreSQL tag repository
func NewTagRepository(db *sql.DB) tags.Repository {
	return &postgresTagRepo{db: db}
}

// GetAll returns every tag, ordered by name
func (r *postgresTagRepo) GetAll(ctx context.Context) ([]*tags.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
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

// GetByID retrieves a tag by id
func (r *postgresTagRepo) GetByID(ctx context.Context, id int64) (*tags.Tag, error) {
	tag := &tags.Tag{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM tags WHERE id = $1`, id).
		Scan(&tag.ID, &tag.Name)

	if err == sql.ErrNoRows {
		return nil, tags.ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return tag, nil
}

// Create inserts a new tag
func (r *postgresTagRepo) Create(ctx context.Context, tag *tags.Tag) (*tags.Tag, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tags (name) VALUES ($1) RETURNING id, name`, tag.Name).
		Scan(&tag.ID, &tag.Name)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, tags.ErrTagNameTaken
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return tag, nil
}

// Update renames a tag
func (r *postgresTagRepo) Update(ctx context.Context, tag *tags.Tag) (*tags.Tag, error) {
	err := r.db.QueryRowContext(ctx,
		`UPDATE tags SET name = $2 WHERE id = $1 RETURNING id, name`, tag.ID, tag.Name).
		Scan(&tag.ID, &tag.Name)

	if err == sql.ErrNoRows {
		return nil, tags.ErrTagNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, tags.ErrTagNameTaken
		}
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	return tag, nil
}

// Delete removes a tag
// post_tags.tag_id is ON DELETE RESTRICT: a tag still attached to any
// post surfaces as ErrTagInUse and nothing is changed
func (r *postgresTagRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return tags.ErrTagInUse
		}
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return tags.ErrTagNotFound
	}

	return nil
}
