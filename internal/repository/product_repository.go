package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"backoffice/internal/model"
)

// ProductRepository defines persistence operations for products and their
// service, option and category relationships.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	Update(ctx context.Context, id uint, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id uint) (int64, error)

	ToggleTop(ctx context.Context, id uint) (int64, error)
	ToggleCarousel(ctx context.Context, id uint) (int64, error)
	CountInCarousel(ctx context.Context) (int64, error)

	ListServices(ctx context.Context, productID uint) ([]model.ProductServiceLine, error)
	UpsertService(ctx context.Context, link *model.ProductService) error
	RemoveService(ctx context.Context, productID, serviceID uint) (int64, error)
	ListCategories(ctx context.Context, productID uint) ([]model.CategoryRef, error)

	ListOptions(ctx context.Context, productID uint) ([]model.Option, error)
	AddOption(ctx context.Context, productID, optionID uint) error
	RemoveOption(ctx context.Context, productID, optionID uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	q := omitBlank(r.db.WithContext(ctx), map[string]string{"name": product.Name})
	return q.Create(product).Error
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	return first[model.Product](r.db.WithContext(ctx).Where("id = ?", id))
}

// FindByName returns the oldest product with that name.
func (r *productRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	return first[model.Product](r.db.WithContext(ctx).Where("name = ?", name).Order("id"))
}

// Update replaces every editable column of the product.
func (r *productRepository) Update(ctx context.Context, id uint, product *model.Product) (*model.Product, error) {
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":           nullIfEmpty(product.Name),
		"description":    product.Description,
		"target_segment": product.TargetSegment,
		"is_in_carousel": product.IsInCarousel,
		"is_top_product": product.IsTopProduct,
		"price":          product.Price,
		"payment_type":   product.PaymentType,
		"updated_at":     time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes the product; cascades drop its services, tags, options and plans links.
func (r *productRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	return res.RowsAffected, res.Error
}

func (r *productRepository) toggle(ctx context.Context, id uint, column string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		column:       gorm.Expr("NOT " + column),
		"updated_at": time.Now(),
	})
	return res.RowsAffected, res.Error
}

func (r *productRepository) ToggleTop(ctx context.Context, id uint) (int64, error) {
	return r.toggle(ctx, id, "is_top_product")
}

func (r *productRepository) ToggleCarousel(ctx context.Context, id uint) (int64, error) {
	return r.toggle(ctx, id, "is_in_carousel")
}

func (r *productRepository) CountInCarousel(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("is_in_carousel = ?", true).Count(&count).Error
	return count, err
}

func (r *productRepository) ListServices(ctx context.Context, productID uint) ([]model.ProductServiceLine, error) {
	var lines []model.ProductServiceLine
	err := r.db.WithContext(ctx).Raw(`
		SELECT ps.service_id, s.name, s.description, s.unit, s.category_id,
		       c.name AS category_name, ps.quantity, ps.display_order
		FROM product_services ps
		JOIN services s ON s.id = ps.service_id
		LEFT JOIN categories c ON c.id = s.category_id
		WHERE ps.product_id = ?
		ORDER BY ps.display_order, s.name`, productID).Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// UpsertService inserts the link or replaces quantity and order of an existing one.
func (r *productRepository) UpsertService(ctx context.Context, link *model.ProductService) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "service_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "display_order"}),
	}).Create(link).Error
}

func (r *productRepository) RemoveService(ctx context.Context, productID, serviceID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND service_id = ?", productID, serviceID).
		Delete(&model.ProductService{})
	return res.RowsAffected, res.Error
}

// ListCategories returns the distinct categories of the product's services.
func (r *productRepository) ListCategories(ctx context.Context, productID uint) ([]model.CategoryRef, error) {
	var refs []model.CategoryRef
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT c.id, c.name
		FROM product_services ps
		JOIN services s ON s.id = ps.service_id
		JOIN categories c ON c.id = s.category_id
		WHERE ps.product_id = ?
		ORDER BY c.name`, productID).Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *productRepository) ListOptions(ctx context.Context, productID uint) ([]model.Option, error) {
	var options []model.Option
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.id, o.tag, o.name, o.description, o.price, o.unit, o.created_at, o.updated_at
		FROM options o
		JOIN option_products op ON op.option_id = o.id
		WHERE op.product_id = ?
		ORDER BY o.name`, productID).Scan(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (r *productRepository) AddOption(ctx context.Context, productID, optionID uint) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.OptionProduct{ProductID: productID, OptionID: optionID}).Error
}

func (r *productRepository) RemoveOption(ctx context.Context, productID, optionID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND option_id = ?", productID, optionID).
		Delete(&model.OptionProduct{})
	return res.RowsAffected, res.Error
}
