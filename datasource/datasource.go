// Package datasource abstracts where the panel's state comes from: the
// built-in seed dataset (mock mode) or the platform API (remote mode).
// Stores receive a source at construction and never branch on the mode
// themselves.
package datasource

import (
	"context"
	"errors"

	"matsal-partner-api/entity"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// MenuSnapshot bundles the three menu collections so a load replaces
// them atomically.
type MenuSnapshot struct {
	Items          []entity.MenuItem      `json:"items"`
	Categories     []entity.MenuCategory  `json:"categories"`
	ModifierGroups []entity.ModifierGroup `json:"modifierGroups"`
}

type OrderSource interface {
	LoadOrders(ctx context.Context) ([]entity.Order, error)
}

type MenuSource interface {
	LoadMenu(ctx context.Context) (*MenuSnapshot, error)
}

type RestaurantSource interface {
	LoadRestaurant(ctx context.Context) (*entity.RestaurantProfile, error)
	SaveRestaurant(ctx context.Context, profile *entity.RestaurantProfile) error
}

type UserSource interface {
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
}

// Source is the full capability set a deployment picks once at startup.
type Source interface {
	OrderSource
	MenuSource
	RestaurantSource
	UserSource
}
