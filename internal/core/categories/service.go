package categories

import (
	"context"
	"fmt"
	"strings"
)

const maxNameLength = 60

type categoryService struct {
	repo Repository
}

// NewCategoryService creates a new category service
func NewCategoryService(repo Repository) Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]*Category, error) {
	cats, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return cats, nil
}

func (s *categoryService) Create(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	// Repository maps the unique constraint to ErrCategoryNameTaken
	return s.repo.Create(ctx, &Category{Name: name})
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*Category, error) {
	if id <= 0 {
		return nil, ErrCategoryNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Update(ctx context.Context, req UpdateCategoryRequest) (*Category, error) {
	if req.ID <= 0 {
		return nil, ErrCategoryNotFound
	}

	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, &Category{ID: req.ID, Name: name})
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrCategoryNotFound
	}

	// Repository surfaces ErrCategoryInUse while posts still reference it
	return s.repo.Delete(ctx, id)
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewValidationError("name", "name is required")
	}
	if len(name) > maxNameLength {
		return "", NewValidationError("name",
			fmt.Sprintf("name too long (max %d characters)", maxNameLength))
	}
	return name, nil
}
