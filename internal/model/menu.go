package model

import "time"

// MenuItem represents a single entry on the menu. Prices are in Korean won,
// which has no sub-unit, so int64 is exact.
type MenuItem struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Description *string   `json:"description,omitempty" db:"description"`
	Image       *string   `json:"image,omitempty" db:"image"`
	Sizes       []string  `json:"sizes,omitempty" db:"sizes"`
	Price       int64     `json:"price" db:"price"`
	HalfPrice   *int64    `json:"halfPrice,omitempty" db:"half_price"`
	IsAvailable bool      `json:"isAvailable" db:"is_available"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// MenuCategory groups menu items under one category with its display name.
type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuRequest represents the admin payload for creating or updating a menu item.
type MenuRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Price       int64    `json:"price"`
	HalfPrice   *int64   `json:"halfPrice,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}
