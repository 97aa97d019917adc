package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// ServiceRepository defines persistence operations for catalog services.
type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	List(ctx context.Context) ([]model.ServiceRow, error)
	FindByID(ctx context.Context, id uint) (*model.ServiceRow, error)
	FindByName(ctx context.Context, name string) (*model.Service, error)
	Update(ctx context.Context, id uint, service *model.Service) (*model.ServiceRow, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository builds a GORM-backed repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

const serviceRowSelect = `
	SELECT s.id, s.name, s.description, s.unit, s.category_id, s.created_at, s.updated_at,
	       c.name AS category_name
	FROM services s
	LEFT JOIN categories c ON s.category_id = c.id`

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	q := omitBlank(r.db.WithContext(ctx), map[string]string{"name": service.Name})
	return q.Create(service).Error
}

func (r *serviceRepository) List(ctx context.Context) ([]model.ServiceRow, error) {
	var rows []model.ServiceRow
	if err := r.db.WithContext(ctx).Raw(serviceRowSelect + ` ORDER BY s.id`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uint) (*model.ServiceRow, error) {
	var rows []model.ServiceRow
	if err := r.db.WithContext(ctx).Raw(serviceRowSelect+` WHERE s.id = ?`, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *serviceRepository) FindByName(ctx context.Context, name string) (*model.Service, error) {
	return first[model.Service](r.db.WithContext(ctx).Where("name = ?", name))
}

func (r *serviceRepository) Update(ctx context.Context, id uint, service *model.Service) (*model.ServiceRow, error) {
	err := r.db.WithContext(ctx).Model(&model.Service{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        nullIfEmpty(service.Name),
		"description": service.Description,
		"unit":        service.Unit,
		"category_id": service.CategoryID,
		"updated_at":  time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes the service and, through cascades, its product and tag links.
func (r *serviceRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Service{}, id)
	return res.RowsAffected, res.Error
}
