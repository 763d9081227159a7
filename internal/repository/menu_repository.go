package repository

import (
	"context"
	"fmt"

	"ezysalad/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

const menuColumns = `id, name, category, description, image, sizes, price, half_price, is_available, created_at, updated_at`

func scanMenuItem(row pgx.Row) (*model.MenuItem, error) {
	var m model.MenuItem
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Category,
		&m.Description,
		&m.Image,
		&m.Sizes,
		&m.Price,
		&m.HalfPrice,
		&m.IsAvailable,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetAll retrieves menu items in storefront display order.
func (r *menuRepository) GetAll(ctx context.Context, onlyAvailable bool) ([]model.MenuItem, error) {
	query := `
		SELECT ` + menuColumns + `
		FROM menus
		ORDER BY category DESC, name ASC
	`
	if onlyAvailable {
		query = `
			SELECT ` + menuColumns + `
			FROM menus
			WHERE is_available
			ORDER BY category DESC, name ASC
		`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menus")
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu row")
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		items = append(items, *m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu rows")
		return nil, fmt.Errorf("error iterating menus: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *menuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	query := `
		SELECT ` + menuColumns + `
		FROM menus
		WHERE id = $1
	`

	m, err := scanMenuItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("menu_id", id).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_id", id).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return m, nil
}

// Create inserts a new menu item.
func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	query := `
		INSERT INTO menus (id, name, category, description, image, sizes, price, half_price, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Category,
		item.Description,
		item.Image,
		item.Sizes,
		item.Price,
		item.HalfPrice,
		item.IsAvailable,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", item.ID).Msg("failed to create menu item")
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Debug().Str("menu_id", item.ID).Msg("menu item created")
	return nil
}

// Update replaces an existing menu item.
func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) (bool, error) {
	query := `
		UPDATE menus
		SET name = $2,
		    category = $3,
		    description = $4,
		    image = $5,
		    sizes = $6,
		    price = $7,
		    half_price = $8,
		    is_available = $9,
		    updated_at = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Category,
		item.Description,
		item.Image,
		item.Sizes,
		item.Price,
		item.HalfPrice,
		item.IsAvailable,
		item.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", item.ID).Msg("failed to update menu item")
		return false, fmt.Errorf("failed to update menu item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a menu item.
func (r *menuRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", id).Msg("failed to delete menu item")
		return false, fmt.Errorf("failed to delete menu item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
