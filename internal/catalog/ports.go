package catalog

import (
	"context"
	"errors"
)

// ErrNotFound — no product matched. Callers branch on it, so it is a
// sentinel rather than a wrapped storage error.
var ErrNotFound = errors.New("catalog: product not found")

// Product is one catalog row. The numeric spec fields are pointers so a
// value that is absent in the catalog stays distinguishable from zero
// when two products are compared.
type Product struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	BatteryHours *float64 `json:"battery_hours,omitempty"`
	RAMGB        *float64 `json:"ram_gb,omitempty"`
	StorageGB    *float64 `json:"storage_gb,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
}

// Repo — persistence. Single-row lookups return ErrNotFound when nothing
// matches; list lookups return an empty slice.
type Repo interface {
	FindByID(ctx context.Context, id int64) (*Product, error)
	// FindByName matches the whole name case-insensitively.
	FindByName(ctx context.Context, name string) (*Product, error)
	// SearchNameSubstring returns the single best row whose name
	// contains q.
	SearchNameSubstring(ctx context.Context, q string) (*Product, error)
	// SearchNameAllTokens returns rows whose name contains every token.
	SearchNameAllTokens(ctx context.Context, tokens []string) ([]Product, error)
	// SearchNameOrDescription matches q against name or description.
	SearchNameOrDescription(ctx context.Context, q string) ([]Product, error)
	List(ctx context.Context, page, limit int) ([]Product, int, error)
	Insert(ctx context.Context, p *Product) error
}
