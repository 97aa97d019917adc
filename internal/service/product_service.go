package service

import (
	"context"
	"fmt"

	"backoffice/internal/cache"
	"backoffice/internal/errors"
	"backoffice/internal/listing"
	"backoffice/internal/model"
	"backoffice/internal/reconcile"
	"backoffice/internal/repository"
)

// ProductService manages products, their service bundle and their inherited tags.
type ProductService interface {
	CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListProductDetails(ctx context.Context, q listing.Query) ([]model.ProductDetail, error)
	GetProduct(ctx context.Context, id uint) (*model.ProductDetail, error)
	UpdateProduct(ctx context.Context, id uint, in ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) (int64, error)
	SaveProduct(ctx context.Context, id *uint, in ProductInput) (*model.ProductDetail, error)

	ToggleTop(ctx context.Context, id uint) (*model.Product, error)
	ToggleCarousel(ctx context.Context, id uint) (*model.Product, error)
	Showcase(ctx context.Context, q listing.Query) (model.Showcase, error)

	ListServices(ctx context.Context, productID uint) ([]model.ProductServiceLine, error)
	AddService(ctx context.Context, productID uint, link model.ServiceQuantity) error
	RemoveService(ctx context.Context, productID, serviceID uint) (int64, error)
	SyncServices(ctx context.Context, productID uint, links []model.ServiceQuantity) (reconcile.Result[uint], error)
}

type productService struct {
	repos *repository.Repositories
	cache *cache.Client
}

// NewProductService builds a ProductService.
func NewProductService(repos *repository.Repositories, cache *cache.Client) ProductService {
	return &productService{repos: repos, cache: cache}
}

func (s *productService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, cache.KeyDashboardStats)
}

func validateProduct(in ProductInput) error {
	if !in.PaymentType.Valid() {
		return errors.Validation(fmt.Sprintf("payment type %q is not one of one_time, monthly", in.PaymentType))
	}
	for _, l := range in.Services {
		if l.Quantity < 0 {
			return errors.Validation("service quantity must not be negative")
		}
	}
	return nil
}

// ensureCarouselRoom fails when a product not yet in the carousel would join a full one.
func ensureCarouselRoom(ctx context.Context, repos *repository.Repositories, existing *model.Product) error {
	if existing != nil && existing.IsInCarousel {
		return nil
	}
	count, err := repos.Products.CountInCarousel(ctx)
	if err != nil {
		return fmt.Errorf("count carousel: %w", err)
	}
	if count >= model.CarouselLimit {
		return errors.ErrCarouselLimit
	}
	return nil
}

func (s *productService) CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product := in.toModel()
	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		if product.IsInCarousel {
			if err := ensureCarouselRoom(ctx, tx, nil); err != nil {
				return err
			}
		}
		return tx.Products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.repos.Products.List(ctx)
}

func (s *productService) ListProductDetails(ctx context.Context, q listing.Query) ([]model.ProductDetail, error) {
	details, err := s.allDetails(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Products(details, q), nil
}

func (s *productService) allDetails(ctx context.Context) ([]model.ProductDetail, error) {
	products, err := s.repos.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]model.ProductDetail, 0, len(products))
	for _, p := range products {
		d, err := loadDetail(ctx, s.repos, p)
		if err != nil {
			return nil, fmt.Errorf("load product %d: %w", p.ID, err)
		}
		details = append(details, *d)
	}
	return details, nil
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*model.ProductDetail, error) {
	return productDetail(ctx, s.repos, id)
}

// UpdateProduct replaces the product's own fields; links are left untouched.
func (s *productService) UpdateProduct(ctx context.Context, id uint, in ProductInput) (*model.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	var updated *model.Product
	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		var err error
		updated, err = updateProduct(ctx, tx, id, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func updateProduct(ctx context.Context, tx *repository.Repositories, id uint, in ProductInput) (*model.Product, error) {
	if in.IsInCarousel {
		existing, err := tx.Products.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, nil
		}
		if err := ensureCarouselRoom(ctx, tx, existing); err != nil {
			return nil, err
		}
	}
	return tx.Products.Update(ctx, id, in.toModel())
}

func (s *productService) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	n, err := s.repos.Products.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return n, nil
}

// SaveProduct creates the product when id is nil, updates it otherwise, then
// makes its service bundle exactly in.Services and its tag set the union of the
// tags of those services. Everything happens in one transaction.
func (s *productService) SaveProduct(ctx context.Context, id *uint, in ProductInput) (*model.ProductDetail, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	var detail *model.ProductDetail
	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		var productID uint
		if id == nil {
			product := in.toModel()
			if product.IsInCarousel {
				if err := ensureCarouselRoom(ctx, tx, nil); err != nil {
					return err
				}
			}
			if err := tx.Products.Create(ctx, product); err != nil {
				return err
			}
			productID = product.ID
		} else {
			product, err := updateProduct(ctx, tx, *id, in)
			if err != nil {
				return err
			}
			if product == nil {
				return nil
			}
			productID = product.ID
		}

		if _, err := syncProductServices(ctx, tx, productID, in.Services); err != nil {
			return fmt.Errorf("sync product services: %w", err)
		}
		if err := applyInheritedTags(ctx, tx, productID, in.Services); err != nil {
			return fmt.Errorf("apply inherited tags: %w", err)
		}

		var err error
		detail, err = productDetail(ctx, tx, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return detail, nil
}

// applyInheritedTags sets the product's tags to the union of its services' tags.
func applyInheritedTags(ctx context.Context, tx *repository.Repositories, productID uint, links []model.ServiceQuantity) error {
	serviceIDs := make([]uint, 0, len(links))
	for _, l := range links {
		serviceIDs = append(serviceIDs, l.ServiceID)
	}
	inherited, err := tx.Tags.IDsForServices(ctx, serviceIDs)
	if err != nil {
		return err
	}
	_, err = syncProductTags(ctx, tx, productID, inherited)
	return err
}

func (s *productService) ToggleTop(ctx context.Context, id uint) (*model.Product, error) {
	n, err := s.repos.Products.ToggleTop(ctx, id)
	if err != nil || n == 0 {
		return nil, err
	}
	return s.repos.Products.FindByID(ctx, id)
}

// ToggleCarousel flips carousel membership, refusing to add a sixth product.
func (s *productService) ToggleCarousel(ctx context.Context, id uint) (*model.Product, error) {
	var product *model.Product
	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		existing, err := tx.Products.FindByID(ctx, id)
		if err != nil || existing == nil {
			return err
		}
		if err := ensureCarouselRoom(ctx, tx, existing); err != nil {
			return err
		}
		if _, err := tx.Products.ToggleCarousel(ctx, id); err != nil {
			return err
		}
		product, err = tx.Products.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Showcase(ctx context.Context, q listing.Query) (model.Showcase, error) {
	details, err := s.allDetails(ctx)
	if err != nil {
		return model.Showcase{}, err
	}
	return listing.Showcase(details, q), nil
}

func (s *productService) ListServices(ctx context.Context, productID uint) ([]model.ProductServiceLine, error) {
	return s.repos.Products.ListServices(ctx, productID)
}

// AddService links a service or replaces the quantity of an existing link. A
// new link goes last; an existing one keeps its position.
func (s *productService) AddService(ctx context.Context, productID uint, link model.ServiceQuantity) error {
	if link.Quantity < 0 {
		return errors.Validation("service quantity must not be negative")
	}
	return s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		lines, err := tx.Products.ListServices(ctx, productID)
		if err != nil {
			return err
		}
		order := 0
		for _, l := range lines {
			if l.ServiceID == link.ServiceID {
				order = l.DisplayOrder
				break
			}
			order = max(order, l.DisplayOrder+1)
		}
		return tx.Products.UpsertService(ctx, &model.ProductService{
			ProductID:    productID,
			ServiceID:    link.ServiceID,
			Quantity:     quantityOrDefault(link.Quantity),
			DisplayOrder: order,
		})
	})
}

func (s *productService) RemoveService(ctx context.Context, productID, serviceID uint) (int64, error) {
	return s.repos.Products.RemoveService(ctx, productID, serviceID)
}

func (s *productService) SyncServices(ctx context.Context, productID uint, links []model.ServiceQuantity) (reconcile.Result[uint], error) {
	for _, l := range links {
		if l.Quantity < 0 {
			return reconcile.Result[uint]{}, errors.Validation("service quantity must not be negative")
		}
	}
	var res reconcile.Result[uint]
	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		var err error
		res, err = syncProductServices(ctx, tx, productID, links)
		return err
	})
	return res, err
}

// serviceLink is the value compared when reconciling product services.
type serviceLink struct {
	quantity     int
	displayOrder int
}

func quantityOrDefault(q int) int {
	if q == 0 {
		return 1
	}
	return q
}

// syncProductServices makes the product's services exactly links, in order.
// A service listed twice keeps its first position and last quantity.
func syncProductServices(ctx context.Context, tx *repository.Repositories, productID uint, links []model.ServiceQuantity) (reconcile.Result[uint], error) {
	lines, err := tx.Products.ListServices(ctx, productID)
	if err != nil {
		return reconcile.Result[uint]{}, fmt.Errorf("list product services: %w", err)
	}
	current := make(map[uint]serviceLink, len(lines))
	for _, l := range lines {
		current[l.ServiceID] = serviceLink{quantity: l.Quantity, displayOrder: l.DisplayOrder}
	}

	desired := make(map[uint]serviceLink, len(links))
	order := 0
	for _, l := range links {
		v, seen := desired[l.ServiceID]
		if !seen {
			v.displayOrder = order
			order++
		}
		v.quantity = quantityOrDefault(l.Quantity)
		desired[l.ServiceID] = v
	}

	return reconcile.Weighted(ctx, current, desired,
		func(ctx context.Context, serviceID uint, v serviceLink) error {
			return tx.Products.UpsertService(ctx, &model.ProductService{
				ProductID:    productID,
				ServiceID:    serviceID,
				Quantity:     v.quantity,
				DisplayOrder: v.displayOrder,
			})
		},
		func(ctx context.Context, serviceID uint) error {
			_, err := tx.Products.RemoveService(ctx, productID, serviceID)
			return err
		},
	)
}

func productDetail(ctx context.Context, repos *repository.Repositories, id uint) (*model.ProductDetail, error) {
	product, err := repos.Products.FindByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}
	return loadDetail(ctx, repos, *product)
}

func loadDetail(ctx context.Context, repos *repository.Repositories, product model.Product) (*model.ProductDetail, error) {
	d := &model.ProductDetail{Product: product}
	var err error
	if d.Services, err = repos.Products.ListServices(ctx, product.ID); err != nil {
		return nil, err
	}
	if d.Tags, err = repos.Tags.ListForProduct(ctx, product.ID); err != nil {
		return nil, err
	}
	if d.Categories, err = repos.Products.ListCategories(ctx, product.ID); err != nil {
		return nil, err
	}
	if d.Plans, err = repos.Plans.ListByProduct(ctx, product.ID); err != nil {
		return nil, err
	}
	if d.Options, err = repos.Products.ListOptions(ctx, product.ID); err != nil {
		return nil, err
	}
	return d, nil
}
