package service

import (
	"context"
	"fmt"
	"strings"

	"backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/reconcile"
	"backoffice/internal/repository"
)

// TagService manages tags and their links to services and products.
type TagService interface {
	CreateTag(ctx context.Context, in TagInput) (*model.Tag, error)
	ListTags(ctx context.Context) ([]model.Tag, error)
	UpdateTag(ctx context.Context, id uint, in TagInput) (*model.Tag, error)
	DeleteTag(ctx context.Context, id uint) (int64, error)

	TagsForService(ctx context.Context, serviceID uint) ([]model.Tag, error)
	AddTagToService(ctx context.Context, serviceID, tagID uint) error
	RemoveTagFromService(ctx context.Context, serviceID, tagID uint) (int64, error)
	SyncServiceTags(ctx context.Context, serviceID uint, tagIDs []uint) (reconcile.Result[uint], error)

	TagsForProduct(ctx context.Context, productID uint) ([]model.Tag, error)
	AddTagToProduct(ctx context.Context, productID, tagID uint) error
	RemoveTagFromProduct(ctx context.Context, productID, tagID uint) (int64, error)
	SyncProductTags(ctx context.Context, productID uint, tagIDs []uint) (reconcile.Result[uint], error)
}

type tagService struct {
	repos *repository.Repositories
}

// NewTagService builds a TagService.
func NewTagService(repos *repository.Repositories) TagService {
	return &tagService{repos: repos}
}

func (s *tagService) CreateTag(ctx context.Context, in TagInput) (*model.Tag, error) {
	if blank(in.Name) {
		return nil, errors.Validation("tag name is required")
	}
	tag := &model.Tag{Name: strings.TrimSpace(in.Name)}
	if err := s.repos.Tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.repos.Tags.List(ctx)
}

func (s *tagService) UpdateTag(ctx context.Context, id uint, in TagInput) (*model.Tag, error) {
	if blank(in.Name) {
		return nil, errors.Validation("tag name is required")
	}
	return s.repos.Tags.Update(ctx, id, &model.Tag{Name: strings.TrimSpace(in.Name)})
}

func (s *tagService) DeleteTag(ctx context.Context, id uint) (int64, error) {
	return s.repos.Tags.Delete(ctx, id)
}

func (s *tagService) TagsForService(ctx context.Context, serviceID uint) ([]model.Tag, error) {
	return s.repos.Tags.ListForService(ctx, serviceID)
}

func (s *tagService) AddTagToService(ctx context.Context, serviceID, tagID uint) error {
	return s.repos.Tags.AddToService(ctx, serviceID, tagID)
}

func (s *tagService) RemoveTagFromService(ctx context.Context, serviceID, tagID uint) (int64, error) {
	return s.repos.Tags.RemoveFromService(ctx, serviceID, tagID)
}

func (s *tagService) SyncServiceTags(ctx context.Context, serviceID uint, tagIDs []uint) (reconcile.Result[uint], error) {
	var res reconcile.Result[uint]
	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		var err error
		res, err = syncServiceTags(ctx, tx, serviceID, tagIDs)
		return err
	})
	return res, err
}

func (s *tagService) TagsForProduct(ctx context.Context, productID uint) ([]model.Tag, error) {
	return s.repos.Tags.ListForProduct(ctx, productID)
}

func (s *tagService) AddTagToProduct(ctx context.Context, productID, tagID uint) error {
	return s.repos.Tags.AddToProduct(ctx, productID, tagID)
}

func (s *tagService) RemoveTagFromProduct(ctx context.Context, productID, tagID uint) (int64, error) {
	return s.repos.Tags.RemoveFromProduct(ctx, productID, tagID)
}

func (s *tagService) SyncProductTags(ctx context.Context, productID uint, tagIDs []uint) (reconcile.Result[uint], error) {
	var res reconcile.Result[uint]
	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		var err error
		res, err = syncProductTags(ctx, tx, productID, tagIDs)
		return err
	})
	return res, err
}

func tagIDs(tags []model.Tag) []uint {
	ids := make([]uint, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// syncServiceTags makes the service's tag set exactly desired. tx must already
// be bound to a transaction.
func syncServiceTags(ctx context.Context, tx *repository.Repositories, serviceID uint, desired []uint) (reconcile.Result[uint], error) {
	current, err := tx.Tags.ListForService(ctx, serviceID)
	if err != nil {
		return reconcile.Result[uint]{}, fmt.Errorf("list service tags: %w", err)
	}
	return reconcile.Links(ctx, tagIDs(current), desired,
		func(ctx context.Context, tagID uint) error {
			return tx.Tags.AddToService(ctx, serviceID, tagID)
		},
		func(ctx context.Context, tagID uint) error {
			_, err := tx.Tags.RemoveFromService(ctx, serviceID, tagID)
			return err
		},
	)
}

// syncProductTags makes the product's tag set exactly desired. tx must already
// be bound to a transaction.
func syncProductTags(ctx context.Context, tx *repository.Repositories, productID uint, desired []uint) (reconcile.Result[uint], error) {
	current, err := tx.Tags.ListForProduct(ctx, productID)
	if err != nil {
		return reconcile.Result[uint]{}, fmt.Errorf("list product tags: %w", err)
	}
	return reconcile.Links(ctx, tagIDs(current), desired,
		func(ctx context.Context, tagID uint) error {
			return tx.Tags.AddToProduct(ctx, productID, tagID)
		},
		func(ctx context.Context, tagID uint) error {
			_, err := tx.Tags.RemoveFromProduct(ctx, productID, tagID)
			return err
		},
	)
}
