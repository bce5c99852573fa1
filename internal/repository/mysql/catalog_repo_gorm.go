package mysql

import (
	"errors"
	"log"

	"booking-service/internal/domain"
	"booking-service/internal/repository"

	"gorm.io/gorm"
)

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListReviews(limit, offset int) ([]domain.Review, int64, error) {
	var total int64
	if err := r.db.Model(&domain.Review{}).Count(&total).Error; err != nil {
		log.Printf("ListReviews count error: %v", err)
		return nil, 0, err
	}

	var out []domain.Review
	if err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		log.Printf("ListReviews error: %v", err)
		return nil, 0, err
	}
	return out, total, nil
}

func (r *catalogRepo) ListCarriers(limit, offset int) ([]domain.Carrier, int64, error) {
	var total int64
	if err := r.db.Model(&domain.Carrier{}).Count(&total).Error; err != nil {
		log.Printf("ListCarriers count error: %v", err)
		return nil, 0, err
	}

	var out []domain.Carrier
	if err := r.db.Order("id ASC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		log.Printf("ListCarriers error: %v", err)
		return nil, 0, err
	}
	return out, total, nil
}

func (r *catalogRepo) ListFlights(from, to string, limit, offset int) ([]domain.Flight, int64, error) {
	query := r.db.Model(&domain.Flight{}).
		Where("`from` LIKE ?", "%"+from+"%").
		Where("`to` LIKE ?", "%"+to+"%")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("ListFlights count error: %v", err)
		return nil, 0, err
	}

	var out []domain.Flight
	if err := query.Preload("Carrier").Order("id ASC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		log.Printf("ListFlights error: %v", err)
		return nil, 0, err
	}
	return out, total, nil
}

func (r *catalogRepo) FindFlightByID(id uint64) (*domain.Flight, error) {
	var f domain.Flight
	if err := r.db.Preload("Carrier").First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindFlightByID error: %v", err)
		return nil, err
	}
	return &f, nil
}

// DepartureCities returns the raw `from` column values in id order; the
// service layer merges and deduplicates them with the arrival side.
func (r *catalogRepo) DepartureCities() ([]string, error) {
	var out []string
	if err := r.db.Model(&domain.Flight{}).Order("id ASC").Pluck("`from`", &out).Error; err != nil {
		log.Printf("DepartureCities error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) ArrivalCities() ([]string, error) {
	var out []string
	if err := r.db.Model(&domain.Flight{}).Order("id ASC").Pluck("`to`", &out).Error; err != nil {
		log.Printf("ArrivalCities error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) ListCategories() ([]domain.Category, error) {
	var out []domain.Category
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		log.Printf("ListCategories error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) FindCategoryBySlug(slug string) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.Where("slug = ?", slug).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindCategoryBySlug error: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *catalogRepo) ListProductsByCategory(categoryID uint64, limit int) ([]domain.Product, error) {
	query := r.db.Where("category_id = ?", categoryID).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var out []domain.Product
	if err := query.Find(&out).Error; err != nil {
		log.Printf("ListProductsByCategory error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) FindProductBySlug(slug string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.Where("slug = ?", slug).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindProductBySlug error: %v", err)
		return nil, err
	}
	return &p, nil
}
