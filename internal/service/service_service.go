package service

import (
	"context"
	"fmt"

	"backoffice/internal/cache"
	"backoffice/internal/listing"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// ServiceService manages the catalog services that products bundle.
type ServiceService interface {
	CreateService(ctx context.Context, in ServiceInput) (*model.ServiceRow, error)
	ListServices(ctx context.Context) ([]model.ServiceRow, error)
	ListServiceDetails(ctx context.Context, q listing.Query) ([]model.ServiceDetail, error)
	GetService(ctx context.Context, id uint) (*model.ServiceDetail, error)
	UpdateService(ctx context.Context, id uint, in ServiceInput) (*model.ServiceRow, error)
	DeleteService(ctx context.Context, id uint) (int64, error)
	SaveService(ctx context.Context, id *uint, in ServiceInput) (*model.ServiceDetail, error)
}

type serviceService struct {
	repos *repository.Repositories
	cache *cache.Client
}

// NewServiceService builds a ServiceService.
func NewServiceService(repos *repository.Repositories, cache *cache.Client) ServiceService {
	return &serviceService{repos: repos, cache: cache}
}

func (s *serviceService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, cache.KeyDashboardStats)
}

func (s *serviceService) CreateService(ctx context.Context, in ServiceInput) (*model.ServiceRow, error) {
	svc := in.toModel()
	if err := s.repos.Services.Create(ctx, svc); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repos.Services.FindByID(ctx, svc.ID)
}

func (s *serviceService) ListServices(ctx context.Context) ([]model.ServiceRow, error) {
	return s.repos.Services.List(ctx)
}

func (s *serviceService) ListServiceDetails(ctx context.Context, q listing.Query) ([]model.ServiceDetail, error) {
	rows, err := s.repos.Services.List(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]model.ServiceDetail, 0, len(rows))
	for _, row := range rows {
		tags, err := s.repos.Tags.ListForService(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("list tags of service %d: %w", row.ID, err)
		}
		details = append(details, model.ServiceDetail{ServiceRow: row, Tags: tags})
	}
	return listing.Services(details, q), nil
}

func (s *serviceService) GetService(ctx context.Context, id uint) (*model.ServiceDetail, error) {
	return serviceDetail(ctx, s.repos, id)
}

func (s *serviceService) UpdateService(ctx context.Context, id uint, in ServiceInput) (*model.ServiceRow, error) {
	return s.repos.Services.Update(ctx, id, in.toModel())
}

func (s *serviceService) DeleteService(ctx context.Context, id uint) (int64, error) {
	n, err := s.repos.Services.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return n, nil
}

// SaveService creates the service when id is nil, updates it otherwise, and
// makes its tag set exactly in.TagIDs, all in one transaction.
func (s *serviceService) SaveService(ctx context.Context, id *uint, in ServiceInput) (*model.ServiceDetail, error) {
	var detail *model.ServiceDetail
	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		var serviceID uint
		if id == nil {
			svc := in.toModel()
			if err := tx.Services.Create(ctx, svc); err != nil {
				return err
			}
			serviceID = svc.ID
		} else {
			row, err := tx.Services.Update(ctx, *id, in.toModel())
			if err != nil {
				return err
			}
			if row == nil {
				return nil
			}
			serviceID = row.ID
		}

		if _, err := syncServiceTags(ctx, tx, serviceID, in.TagIDs); err != nil {
			return fmt.Errorf("sync service tags: %w", err)
		}

		var err error
		detail, err = serviceDetail(ctx, tx, serviceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return detail, nil
}

func serviceDetail(ctx context.Context, repos *repository.Repositories, id uint) (*model.ServiceDetail, error) {
	row, err := repos.Services.FindByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	tags, err := repos.Tags.ListForService(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.ServiceDetail{ServiceRow: *row, Tags: tags}, nil
}
