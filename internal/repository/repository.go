package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repositories bundles every catalog repository over one store handle.
type Repositories struct {
	Users      UserRepository
	Categories CategoryRepository
	Services   ServiceRepository
	Products   ProductRepository
	Tags       TagRepository
	Plans      PricingPlanRepository
	Options    OptionRepository
	Dashboard  DashboardRepository

	db *gorm.DB
}

// New builds all repositories over db.
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(db),
		Categories: NewCategoryRepository(db),
		Services:   NewServiceRepository(db),
		Products:   NewProductRepository(db),
		Tags:       NewTagRepository(db),
		Plans:      NewPricingPlanRepository(db),
		Options:    NewOptionRepository(db),
		Dashboard:  NewDashboardRepository(db),
		db:         db,
	}
}

// WithTransaction executes fn with repositories bound to a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (r *Repositories) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, New(tx))
	})
}

// first loads one row into a T, returning nil when nothing matches.
func first[T any](q *gorm.DB) (*T, error) {
	var out T
	if err := q.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// nullIfEmpty maps a blank required text to NULL so the NOT NULL constraint rejects it.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// omitBlank leaves blank required columns out of an INSERT; with no default
// they are written as NULL and the engine refuses the row.
func omitBlank(q *gorm.DB, cols map[string]string) *gorm.DB {
	for col, v := range cols {
		if v == "" {
			q = q.Omit(col)
		}
	}
	return q
}
