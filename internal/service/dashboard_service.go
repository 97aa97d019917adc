package service

import (
	"context"
	"time"

	"backoffice/internal/cache"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

const dashboardCacheTTL = 30 * time.Second

// DashboardService computes the home screen aggregates.
type DashboardService interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
}

type dashboardService struct {
	repo  repository.DashboardRepository
	cache *cache.Client
}

// NewDashboardService builds a DashboardService with repository and cache.
func NewDashboardService(repo repository.DashboardRepository, cache *cache.Client) DashboardService {
	return &dashboardService{repo: repo, cache: cache}
}

func (s *dashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var cached model.DashboardStats
	if s.cache.GetJSON(ctx, cache.KeyDashboardStats, &cached) {
		return &cached, nil
	}

	products, users, services, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.RecentProducts(ctx, model.RecentProductsLimit)
	if err != nil {
		return nil, err
	}
	stats := &model.DashboardStats{
		TotalProducts:  products,
		TotalUsers:     users,
		TotalServices:  services,
		RecentProducts: recent,
	}

	_ = s.cache.SetJSON(ctx, cache.KeyDashboardStats, stats, dashboardCacheTTL)
	return stats, nil
}
