package mysql

import (
	"booking-service/internal/config"
	"booking-service/internal/domain"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func New(cfg *config.Config) (*gorm.DB, error) {
	// The legacy schema carries no foreign key constraints; joins are
	// declared per query and dangling references are tolerated.
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)

	if err := db.AutoMigrate(
		&domain.Carrier{},
		&domain.Category{},
		&domain.Product{},
		&domain.Review{},
		&domain.Flight{},
		&domain.Order{},
		&domain.Payment{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
