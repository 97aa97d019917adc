package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"backoffice/internal/model"
)

// TagRepository defines persistence operations for tags and their links to
// services and products.
type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	List(ctx context.Context) ([]model.Tag, error)
	FindByID(ctx context.Context, id uint) (*model.Tag, error)
	FindByName(ctx context.Context, name string) (*model.Tag, error)
	Update(ctx context.Context, id uint, tag *model.Tag) (*model.Tag, error)
	Delete(ctx context.Context, id uint) (int64, error)

	ListForService(ctx context.Context, serviceID uint) ([]model.Tag, error)
	AddToService(ctx context.Context, serviceID, tagID uint) error
	RemoveFromService(ctx context.Context, serviceID, tagID uint) (int64, error)
	IDsForServices(ctx context.Context, serviceIDs []uint) ([]uint, error)

	ListForProduct(ctx context.Context, productID uint) ([]model.Tag, error)
	AddToProduct(ctx context.Context, productID, tagID uint) error
	RemoveFromProduct(ctx context.Context, productID, tagID uint) (int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository builds a GORM-backed repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) FindByID(ctx context.Context, id uint) (*model.Tag, error) {
	return first[model.Tag](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *tagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	return first[model.Tag](r.db.WithContext(ctx).Where("name = ?", name))
}

func (r *tagRepository) Update(ctx context.Context, id uint, tag *model.Tag) (*model.Tag, error) {
	err := r.db.WithContext(ctx).Model(&model.Tag{}).Where("id = ?", id).Update("name", tag.Name).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes the tag; cascades drop it from services and products.
func (r *tagRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Tag{}, id)
	return res.RowsAffected, res.Error
}

func (r *tagRepository) ListForService(ctx context.Context, serviceID uint) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.id, t.name, t.created_at
		FROM tags t
		JOIN service_tags st ON t.id = st.tag_id
		WHERE st.service_id = ?
		ORDER BY t.name ASC`, serviceID).Scan(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// AddToService is a no-op when the link already exists.
func (r *tagRepository) AddToService(ctx context.Context, serviceID, tagID uint) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ServiceTag{ServiceID: serviceID, TagID: tagID}).Error
}

func (r *tagRepository) RemoveFromService(ctx context.Context, serviceID, tagID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("service_id = ? AND tag_id = ?", serviceID, tagID).
		Delete(&model.ServiceTag{})
	return res.RowsAffected, res.Error
}

// IDsForServices returns the distinct tag ids carried by any of the given services.
func (r *tagRepository) IDsForServices(ctx context.Context, serviceIDs []uint) ([]uint, error) {
	if len(serviceIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.ServiceTag{}).
		Distinct("tag_id").
		Where("service_id IN ?", serviceIDs).
		Order("tag_id").
		Pluck("tag_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *tagRepository) ListForProduct(ctx context.Context, productID uint) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.id, t.name, t.created_at
		FROM tags t
		JOIN product_tags pt ON t.id = pt.tag_id
		WHERE pt.product_id = ?
		ORDER BY t.name ASC`, productID).Scan(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// AddToProduct is a no-op when the link already exists.
func (r *tagRepository) AddToProduct(ctx context.Context, productID, tagID uint) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ProductTag{ProductID: productID, TagID: tagID}).Error
}

func (r *tagRepository) RemoveFromProduct(ctx context.Context, productID, tagID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND tag_id = ?", productID, tagID).
		Delete(&model.ProductTag{})
	return res.RowsAffected, res.Error
}
