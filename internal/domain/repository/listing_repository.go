package repository

import (
	"context"

	"vendora/internal/domain/entity"
)

// Listing repositories are read-only collaborators: the marketplace verticals
// own their write paths elsewhere.

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit int) ([]*entity.Product, error)
}

type HotelRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Hotel, error)
	List(ctx context.Context, limit int) ([]*entity.Hotel, error)
}

type RestaurantRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Restaurant, error)
	List(ctx context.Context, limit int) ([]*entity.Restaurant, error)
}

type DatingProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.DatingProfile, error)
	List(ctx context.Context, limit int) ([]*entity.DatingProfile, error)
}
