package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"Tabloid/internal/core/categories"
)

type postgresCategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepository creates a new PostgreSQL category repository
func NewCategoryRepository(db *sql.DB) categories.Repository {
	return &postgresCategoryRepo{db: db}
}

// GetAll returns every category, ordered by name
func (r *postgresCategoryRepo) GetAll(ctx context.Context) ([]*categories.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer closeRows(rows)

	var result []*categories.Category
	for rows.Next() {
		category := &categories.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		result = append(result, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return result, nil
}

// GetByID retrieves a category by id
func (r *postgresCategoryRepo) GetByID(ctx context.Context, id int64) (*categories.Category, error) {
	category := &categories.Category{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).
		Scan(&category.ID, &category.Name)

	if err == sql.ErrNoRows {
		return nil, categories.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

// Create inserts a new category
func (r *postgresCategoryRepo) Create(ctx context.Context, category *categories.Category) (*categories.Category, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name`, category.Name).
		Scan(&category.ID, &category.Name)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, categories.ErrCategoryNameTaken
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// Update renames a category
func (r *postgresCategoryRepo) Update(ctx context.Context, category *categories.Category) (*categories.Category, error) {
	err := r.db.QueryRowContext(ctx,
		`UPDATE categories SET name = $2 WHERE id = $1 RETURNING id, name`,
		category.ID, category.Name).
		Scan(&category.ID, &category.Name)

	if err == sql.ErrNoRows {
		return nil, categories.ErrCategoryNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, categories.ErrCategoryNameTaken
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// Delete removes a category
// posts.category_id is ON DELETE RESTRICT, so a referenced category
// surfaces as ErrCategoryInUse rather than silently nulling references
func (r *postgresCategoryRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return categories.ErrCategoryInUse
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return categories.ErrCategoryNotFound
	}

	return nil
}
