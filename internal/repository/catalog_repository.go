package repository

import (
	"booking-service/internal/domain"
)

// CatalogRepository is the read-only side of the storage gateway.
// Find methods return (nil, nil) when no row matches.
type CatalogRepository interface {
	ListReviews(limit, offset int) ([]domain.Review, int64, error)
	ListCarriers(limit, offset int) ([]domain.Carrier, int64, error)
	ListFlights(from, to string, limit, offset int) ([]domain.Flight, int64, error)
	FindFlightByID(id uint64) (*domain.Flight, error)
	DepartureCities() ([]string, error)
	ArrivalCities() ([]string, error)
	ListCategories() ([]domain.Category, error)
	FindCategoryBySlug(slug string) (*domain.Category, error)
	ListProductsByCategory(categoryID uint64, limit int) ([]domain.Product, error)
	FindProductBySlug(slug string) (*domain.Product, error)
}
