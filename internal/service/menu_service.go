package service

import (
	"context"
	"fmt"
	"time"

	"ezysalad/internal/model"
	"ezysalad/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// categoryNames maps category tags to their storefront display names.
var categoryNames = map[string]string{
	"sandwiches": "샌드위치",
	"salads":     "샐러드",
	"panini":     "파니니",
	"lunchbox":   "샌드위치 도시락 박스",
	"beverages":  "음료",
	"desserts":   "디저트",
	"meals":      "식사류",
}

// menuService implements MenuService.
type menuService struct {
	repo   repository.MenuRepository
	logger zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		repo:   repo,
		logger: logger.With().Str("service", "menu").Logger(),
	}
}

// GetCategories retrieves available menu items grouped by category.
func (s *menuService) GetCategories(ctx context.Context) ([]model.MenuCategory, error) {
	items, err := s.repo.GetAll(ctx, true)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load menu")
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	// Items arrive in display order; preserve first-seen category order.
	var order []string
	grouped := make(map[string][]model.MenuItem)
	for _, item := range items {
		if _, ok := grouped[item.Category]; !ok {
			order = append(order, item.Category)
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	categories := make([]model.MenuCategory, 0, len(order))
	for _, id := range order {
		name, ok := categoryNames[id]
		if !ok {
			name = id
		}
		categories = append(categories, model.MenuCategory{
			ID:    id,
			Name:  name,
			Items: grouped[id],
		})
	}

	return categories, nil
}

// GetAll retrieves all menu items including hidden ones.
func (s *menuService) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.repo.GetAll(ctx, false)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load menu")
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single menu item by ID.
func (s *menuService) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}
	if item == nil {
		return nil, model.ErrMenuNotFound
	}
	return item, nil
}

// Create adds a new menu item.
func (s *menuService) Create(ctx context.Context, req *model.MenuRequest) (*model.MenuItem, error) {
	if err := validateMenuRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &model.MenuItem{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Sizes:       req.Sizes,
		Price:       req.Price,
		HalfPrice:   req.HalfPrice,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Info().Str("menu_id", item.ID).Str("name", item.Name).Msg("menu item created")
	return item, nil
}

// Update replaces an existing menu item.
func (s *menuService) Update(ctx context.Context, id string, req *model.MenuRequest) (*model.MenuItem, error) {
	if err := validateMenuRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}
	if existing == nil {
		return nil, model.ErrMenuNotFound
	}

	item := &model.MenuItem{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Sizes:       req.Sizes,
		Price:       req.Price,
		HalfPrice:   req.HalfPrice,
		IsAvailable: existing.IsAvailable,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	if !updated {
		return nil, model.ErrMenuNotFound
	}

	s.logger.Info().Str("menu_id", id).Msg("menu item updated")
	return item, nil
}

// Delete removes a menu item.
func (s *menuService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if !deleted {
		return model.ErrMenuNotFound
	}

	s.logger.Info().Str("menu_id", id).Msg("menu item deleted")
	return nil
}

// validateMenuRequest checks required fields and the half-price invariant: a
// half price must undercut the full price, and both size variants must be
// declared with it.
func validateMenuRequest(req *model.MenuRequest) error {
	if req == nil || req.Name == "" || req.Category == "" {
		return model.ErrMissingField
	}
	if req.Price <= 0 {
		return model.NewDomainError(model.ErrCodeMissingField, "Price must be a positive amount")
	}
	if req.HalfPrice != nil {
		if *req.HalfPrice >= req.Price {
			return model.ErrInvalidHalfPrice
		}
		if !hasSize(req.Sizes, "Full") || !hasSize(req.Sizes, "Half") {
			return model.ErrInvalidHalfPrice
		}
	}
	return nil
}

func hasSize(sizes []string, want string) bool {
	for _, s := range sizes {
		if s == want {
			return true
		}
	}
	return false
}
