package categories

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]*Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, category *Category) (*Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, category *Category) (*Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TestDelete_CategoryInUse tests that deleting a referenced category
// surfaces the conflict and leaves the category in place
func TestDelete_CategoryInUse(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Delete", mock.Anything, int64(2)).Return(ErrCategoryInUse)

	service := NewCategoryService(mockRepo)

	err := service.Delete(context.Background(), 2)
	assert.ErrorIs(t, err, ErrCategoryInUse)
	assert.True(t, IsConflict(err))
}

// TestDelete_UnreferencedCategory tests the happy delete path
func TestDelete_UnreferencedCategory(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Delete", mock.Anything, int64(2)).Return(nil)

	service := NewCategoryService(mockRepo)

	err := service.Delete(context.Background(), 2)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

// TestDelete_InvalidID tests that a bogus id never reaches the store
func TestDelete_InvalidID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewCategoryService(mockRepo)

	err := service.Delete(context.Background(), -1)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// TestCreate_TrimsName tests name normalization
func TestCreate_TrimsName(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *Category) bool {
		return c.Name == "News"
	})).Return(&Category{ID: 1, Name: "News"}, nil)

	service := NewCategoryService(mockRepo)

	created, err := service.Create(context.Background(), CreateCategoryRequest{Name: " News "})
	require.NoError(t, err)
	assert.Equal(t, "News", created.Name)
}

// TestCreate_EmptyName tests validation of a blank name
func TestCreate_EmptyName(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewCategoryService(mockRepo)

	_, err := service.Create(context.Background(), CreateCategoryRequest{Name: ""})
	assert.True(t, IsValidationError(err))

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestCreate_NameTooLong tests the length cap
func TestCreate_NameTooLong(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewCategoryService(mockRepo)

	_, err := service.Create(context.Background(), CreateCategoryRequest{Name: strings.Repeat("x", maxNameLength+1)})
	assert.True(t, IsValidationError(err))
}

// TestCreate_DuplicateName tests the unique-name conflict
func TestCreate_DuplicateName(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrCategoryNameTaken)

	service := NewCategoryService(mockRepo)

	_, err := service.Create(context.Background(), CreateCategoryRequest{Name: "News"})
	assert.True(t, IsConflict(err))
}

// TestUpdate_Rename tests renaming a category
func TestUpdate_Rename(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *Category) bool {
		return c.ID == 2 && c.Name == "Sports"
	})).Return(&Category{ID: 2, Name: "Sports"}, nil)

	service := NewCategoryService(mockRepo)

	updated, err := service.Update(context.Background(), UpdateCategoryRequest{ID: 2, Name: "Sports"})
	require.NoError(t, err)
	assert.Equal(t, "Sports", updated.Name)
}

// TestGetByID_Missing tests the not-found path
func TestGetByID_Missing(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, ErrCategoryNotFound)

	service := NewCategoryService(mockRepo)

	_, err := service.GetByID(context.Background(), 99)
	assert.True(t, IsNotFound(err))
}
