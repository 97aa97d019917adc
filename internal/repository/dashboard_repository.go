package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// DashboardRepository reads the aggregates shown on the home screen.
type DashboardRepository interface {
	Counts(ctx context.Context) (products, users, services int64, err error)
	RecentProducts(ctx context.Context, limit int) ([]model.RecentProduct, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository builds a GORM-backed repository.
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) Counts(ctx context.Context) (products, users, services int64, err error) {
	db := r.db.WithContext(ctx)
	if err = db.Model(&model.Product{}).Count(&products).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = db.Model(&model.User{}).Count(&users).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = db.Model(&model.Service{}).Count(&services).Error; err != nil {
		return 0, 0, 0, err
	}
	return products, users, services, nil
}

func (r *dashboardRepository) RecentProducts(ctx context.Context, limit int) ([]model.RecentProduct, error) {
	var recent []model.RecentProduct
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, created_at, price
		FROM products
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit).Scan(&recent).Error
	if err != nil {
		return nil, err
	}
	return recent, nil
}
