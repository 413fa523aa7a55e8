package tags

import (
	"context"
	"fmt"
	"strings"
)

const maxNameLength = 40

type tagService struct {
	repo Repository
}

// NewTagService creates a new tag service
func NewTagService(repo Repository) Service {
	return &tagService{repo: repo}
}

func (s *tagService) List(ctx context.Context) ([]*Tag, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return all, nil
}

func (s *tagService) Create(ctx context.Context, req CreateTagRequest) (*Tag, error) {
	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	// Repository maps the unique constraint to ErrTagNameTaken
	return s.repo.Create(ctx, &Tag{Name: name})
}

func (s *tagService) GetByID(ctx context.Context, id int64) (*Tag, error) {
	if id <= 0 {
		return nil, ErrTagNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *tagService) Update(ctx context.Context, req UpdateTagRequest) (*Tag, error) {
	if req.ID <= 0 {
		return nil, ErrTagNotFound
	}

	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, &Tag{ID: req.ID, Name: name})
}

func (s *tagService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrTagNotFound
	}

	// Repository surfaces ErrTagInUse when the tag is still attached;
	// the tag and its associations are left untouched in that case
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
