package tags

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

func (m *MockRepository) GetAll(ctx context.Context) ([]*Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Tag), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tag), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, tag *Tag) (*Tag, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tag), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, tag *Tag) (*Tag, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tag), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TestDelete_TagInUse tests that deleting an attached tag surfaces the
// conflict instead of removing anything
func TestDelete_TagInUse(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Delete", mock.Anything, int64(3)).Return(ErrTagInUse)

	service := NewTagService(mockRepo)

	err := service.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrTagInUse)
	assert.True(t, IsConflict(err))
}

// TestDelete_UnusedTag tests deleting a tag with no attachments
func TestDelete_UnusedTag(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Delete", mock.Anything, int64(3)).Return(nil)

	service := NewTagService(mockRepo)

	err := service.Delete(context.Background(), 3)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

// TestDelete_InvalidID tests that a bogus id short-circuits
func TestDelete_InvalidID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewTagService(mockRepo)

	err := service.Delete(context.Background(), 0)
	assert.ErrorIs(t, err, ErrTagNotFound)

	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// TestCreate_TrimsName tests name normalization before persistence
func TestCreate_TrimsName(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tag *Tag) bool {
		return tag.Name == "golang"
	})).Return(&Tag{ID: 1, Name: "golang"}, nil)

	service := NewTagService(mockRepo)

	created, err := service.Create(context.Background(), CreateTagRequest{Name: "  golang  "})
	require.NoError(t, err)
	assert.Equal(t, "golang", created.Name)
}

// TestCreate_EmptyName tests validation of a blank name
func TestCreate_EmptyName(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewTagService(mockRepo)

	_, err := service.Create(context.Background(), CreateTagRequest{Name: "   "})
	assert.True(t, IsValidationError(err))

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestCreate_NameTooLong tests the length cap
func TestCreate_NameTooLong(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewTagService(mockRepo)

	_, err := service.Create(context.Background(), CreateTagRequest{Name: strings.Repeat("x", maxNameLength+1)})
	assert.True(t, IsValidationError(err))
}

// TestCreate_DuplicateName tests that the unique constraint surfaces as
// a conflict
func TestCreate_DuplicateName(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrTagNameTaken)

	service := NewTagService(mockRepo)

	_, err := service.Create(context.Background(), CreateTagRequest{Name: "golang"})
	assert.ErrorIs(t, err, ErrTagNameTaken)
	assert.True(t, IsConflict(err))
}

// TestUpdate_Rename tests renaming a tag
func TestUpdate_Rename(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(tag *Tag) bool {
		return tag.ID == 3 && tag.Name == "devops"
	})).Return(&Tag{ID: 3, Name: "devops"}, nil)

	service := NewTagService(mockRepo)

	updated, err := service.Update(context.Background(), UpdateTagRequest{ID: 3, Name: "devops"})
	require.NoError(t, err)
	assert.Equal(t, "devops", updated.Name)
}

// TestGetByID_Missing tests the not-found path
func TestGetByID_Missing(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, ErrTagNotFound)

	service := NewTagService(mockRepo)

	_, err := service.GetByID(context.Background(), 99)
	assert.True(t, IsNotFound(err))
}

// TestList tests plain listing
func TestList(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetAll", mock.Anything).Return([]*Tag{
		{ID: 1, Name: "golang"},
		{ID: 2, Name: "news"},
	}, nil)

	service := NewTagService(mockRepo)

	all, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
