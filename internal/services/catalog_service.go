package services

import (
	"errors"

	"booking-service/internal/domain"
	"booking-service/internal/repository"

	"golang.org/x/sync/errgroup"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

// Default page sizes per endpoint.
const (
	DefaultReviewsLimit  = 10
	DefaultCarriersLimit = 20
	DefaultFlightsLimit  = 10
)

// How many products each category carries on the grouped listing.
const productsPreviewLimit = 4

// Page is the pagination block attached to every list response.
type Page struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int64 `json:"pages"`
}

type CategoryProducts struct {
	domain.Category
	Products []domain.Product `json:"products"`
}

type CatalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func newPage(total int64, page, limit int) Page {
	return Page{
		Total: total,
		Page:  page,
		Pages: (total + int64(limit) - 1) / int64(limit),
	}
}

func normalize(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

func (s *CatalogService) GetReviews(page, limit int) ([]domain.Review, Page, error) {
	page, limit = normalize(page, limit, DefaultReviewsLimit)
	rows, total, err := s.repo.ListReviews(limit, (page-1)*limit)
	if err != nil {
		return nil, Page{}, err
	}
	return rows, newPage(total, page, limit), nil
}

func (s *CatalogService) GetCarriers(page, limit int) ([]domain.Carrier, Page, error) {
	page, limit = normalize(page, limit, DefaultCarriersLimit)
	rows, total, err := s.repo.ListCarriers(limit, (page-1)*limit)
	if err != nil {
		return nil, Page{}, err
	}
	return rows, newPage(total, page, limit), nil
}

// SearchFlights matches from/to as substrings. An unset parameter is
// substituted with the literal text "undefined", faithfully reproducing
// the behavior of the web client this API was built against.
func (s *CatalogService) SearchFlights(from, to string, page, limit int) ([]domain.Flight, Page, error) {
	if from == "" {
		from = "undefined"
	}
	if to == "" {
		to = "undefined"
	}

	page, limit = normalize(page, limit, DefaultFlightsLimit)
	rows, total, err := s.repo.ListFlights(from, to, limit, (page-1)*limit)
	if err != nil {
		return nil, Page{}, err
	}
	return rows, newPage(total, page, limit), nil
}

// GetFlight returns (nil, nil) when the flight does not exist; the HTTP
// layer renders that as a null payload.
func (s *CatalogService) GetFlight(id uint64) (*domain.Flight, error) {
	return s.repo.FindFlightByID(id)
}

// GetCities merges departure and arrival cities into one order-preserving,
// de-duplicated list. The two column scans run concurrently.
func (s *CatalogService) GetCities() ([]string, error) {
	var from, to []string

	var g errgroup.Group
	g.Go(func() error {
		var err error
		from, err = s.repo.DepartureCities()
		return err
	})
	g.Go(func() error {
		var err error
		to, err = s.repo.ArrivalCities()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	cities := make([]string, 0, len(from)+len(to))
	for _, c := range append(from, to...) {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cities = append(cities, c)
	}
	return cities, nil
}

func (s *CatalogService) GetCategories() ([]domain.Category, error) {
	return s.repo.ListCategories()
}

func (s *CatalogService) GetCategory(slug string) (*domain.Category, []domain.Product, error) {
	category, err := s.repo.FindCategoryBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, ErrCategoryNotFound
	}

	products, err := s.repo.ListProductsByCategory(category.ID, 0)
	if err != nil {
		return nil, nil, err
	}
	return category, products, nil
}

// GetProductsByCategories returns every category with up to four of its
// products attached.
func (s *CatalogService) GetProductsByCategories() ([]CategoryProducts, error) {
	categories, err := s.repo.ListCategories()
	if err != nil {
		return nil, err
	}

	out := make([]CategoryProducts, 0, len(categories))
	for _, category := range categories {
		products, err := s.repo.ListProductsByCategory(category.ID, productsPreviewLimit)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryProducts{Category: category, Products: products})
	}
	return out, nil
}

func (s *CatalogService) GetProduct(slug string) (*domain.Product, error) {
	product, err := s.repo.FindProductBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
