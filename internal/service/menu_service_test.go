package service

import (
	"context"
	"errors"
	"testing"

	"ezysalad/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMenuRepository is a mock implementation of repository.MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) GetAll(ctx context.Context, onlyAvailable bool) ([]model.MenuItem, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *model.MenuItem) (bool, error) {
	args := m.Called(ctx, item)
	return args.Bool(0), args.Error(1)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestMenuService_GetCategories(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	// Rows arrive in display order; grouping must keep that order and must
	// only ever see available items.
	items := []model.MenuItem{
		{ID: "sandwich-1", Name: "클럽 샌드위치", Category: "sandwiches", Price: 7000, IsAvailable: true},
		{ID: "sandwich-2", Name: "햄치즈 샌드위치", Category: "sandwiches", Price: 6500, IsAvailable: true},
		{ID: "salad-1", Name: "시저 샐러드", Category: "salads", Price: 9500, IsAvailable: true},
		{ID: "drink-1", Name: "아메리카노", Category: "beverages", Price: 3000, IsAvailable: true},
	}

	mockRepo := new(MockMenuRepository)
	mockRepo.On("GetAll", ctx, true).Return(items, nil)

	svc := NewMenuService(mockRepo, logger)

	categories, err := svc.GetCategories(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "sandwiches", categories[0].ID)
	assert.Equal(t, "샌드위치", categories[0].Name)
	assert.Len(t, categories[0].Items, 2)

	assert.Equal(t, "salads", categories[1].ID)
	assert.Equal(t, "샐러드", categories[1].Name)

	assert.Equal(t, "beverages", categories[2].ID)
	assert.Equal(t, "음료", categories[2].Name)

	mockRepo.AssertExpectations(t)
}

func TestMenuService_GetCategories_UnknownCategoryFallsBackToTag(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := []model.MenuItem{
		{ID: "x-1", Name: "신메뉴", Category: "specials", Price: 8000, IsAvailable: true},
	}

	mockRepo := new(MockMenuRepository)
	mockRepo.On("GetAll", ctx, true).Return(items, nil)

	svc := NewMenuService(mockRepo, logger)

	categories, err := svc.GetCategories(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "specials", categories[0].Name)
}

func TestMenuService_GetCategories_Empty(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockMenuRepository)
	mockRepo.On("GetAll", ctx, true).Return([]model.MenuItem{}, nil)

	svc := NewMenuService(mockRepo, logger)

	categories, err := svc.GetCategories(ctx)

	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestMenuService_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockMenuRepository)
	mockRepo.On("GetByID", ctx, "missing").Return(nil, nil)

	svc := NewMenuService(mockRepo, logger)

	_, err := svc.GetByID(ctx, "missing")

	require.Error(t, err)
	assert.Equal(t, model.ErrMenuNotFound, err)
}

func TestMenuService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockMenuRepository)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.MenuItem")).Return(nil)

	svc := NewMenuService(mockRepo, logger)

	half := int64(5000)
	item, err := svc.Create(ctx, &model.MenuRequest{
		Name:      "시저 샐러드",
		Category:  "salads",
		Sizes:     []string{"Full", "Half"},
		Price:     9500,
		HalfPrice: &half,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "시저 샐러드", item.Name)
	assert.True(t, item.IsAvailable)
	assert.False(t, item.CreatedAt.IsZero())

	mockRepo.AssertExpectations(t)
}

func TestMenuService_Create_Validation(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	half := int64(5000)
	tooHigh := int64(9500)

	tests := []struct {
		name    string
		req     *model.MenuRequest
		wantErr error
	}{
		{
			name:    "missing name",
			req:     &model.MenuRequest{Category: "salads", Price: 9500},
			wantErr: model.ErrMissingField,
		},
		{
			name:    "missing category",
			req:     &model.MenuRequest{Name: "시저 샐러드", Price: 9500},
			wantErr: model.ErrMissingField,
		},
		{
			name:    "half price not below full price",
			req:     &model.MenuRequest{Name: "시저 샐러드", Category: "salads", Price: 9500, HalfPrice: &tooHigh, Sizes: []string{"Full", "Half"}},
			wantErr: model.ErrInvalidHalfPrice,
		},
		{
			name:    "half price without size variants",
			req:     &model.MenuRequest{Name: "시저 샐러드", Category: "salads", Price: 9500, HalfPrice: &half},
			wantErr: model.ErrInvalidHalfPrice,
		},
		{
			name:    "half price with only one variant",
			req:     &model.MenuRequest{Name: "시저 샐러드", Category: "salads", Price: 9500, HalfPrice: &half, Sizes: []string{"Full"}},
			wantErr: model.ErrInvalidHalfPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMenuRepository)
			svc := NewMenuService(mockRepo, logger)

			_, err := svc.Create(ctx, tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestMenuService_Create_NonPositivePrice(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockMenuRepository)
	svc := NewMenuService(mockRepo, logger)

	_, err := svc.Create(ctx, &model.MenuRequest{Name: "시저 샐러드", Category: "salads", Price: 0})

	require.Error(t, err)
	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeMissingField, domainErr.Code)
}

func TestMenuService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := &model.MenuItem{
		ID:          "salad-1",
		Name:        "시저 샐러드",
		Category:    "salads",
		Price:       9500,
		IsAvailable: false,
	}

	mockRepo := new(MockMenuRepository)
	mockRepo.On("GetByID", ctx, "salad-1").Return(existing, nil)
	mockRepo.On("Update", ctx, mock.AnythingOfType("*model.MenuItem")).Return(true, nil)

	svc := NewMenuService(mockRepo, logger)

	item, err := svc.Update(ctx, "salad-1", &model.MenuRequest{
		Name:     "시저 샐러드",
		Category: "salads",
		Price:    10500,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10500), item.Price)
	// Availability is carried over when the request omits it.
	assert.False(t, item.IsAvailable)
}

func TestMenuService_Update_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockMenuRepository)
	mockRepo.On("GetByID", ctx, "missing").Return(nil, nil)

	svc := NewMenuService(mockRepo, logger)

	_, err := svc.Update(ctx, "missing", &model.MenuRequest{Name: "시저 샐러드", Category: "salads", Price: 9500})

	require.Error(t, err)
	assert.Equal(t, model.ErrMenuNotFound, err)
}

func TestMenuService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("Delete", ctx, "salad-1").Return(true, nil)

		svc := NewMenuService(mockRepo, logger)

		require.NoError(t, svc.Delete(ctx, "salad-1"))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("Delete", ctx, "missing").Return(false, nil)

		svc := NewMenuService(mockRepo, logger)

		err := svc.Delete(ctx, "missing")
		require.Error(t, err)
		assert.Equal(t, model.ErrMenuNotFound, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("Delete", ctx, "salad-1").Return(false, errors.New("connection refused"))

		svc := NewMenuService(mockRepo, logger)

		require.Error(t, svc.Delete(ctx, "salad-1"))
	})
}
