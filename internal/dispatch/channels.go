package dispatch

import (
	"context"

	"backoffice/internal/listing"
	"backoffice/internal/model"
	"backoffice/internal/service"
)

// Services are the business services the catalog channels call into.
type Services struct {
	Users      service.UserService
	Categories service.CategoryService
	Services   service.ServiceService
	Products   service.ProductService
	Tags       service.TagService
	Plans      service.PricingPlanService
	Options    service.OptionService
	Dashboard  service.DashboardService
}

// IDParams addresses one record.
type IDParams struct {
	ID uint `json:"id" validate:"required"`
}

// UserUpdateParams addresses a user and carries its new fields.
type UserUpdateParams struct {
	ID uint `json:"id" validate:"required"`
	service.UserInput
}

// PasswordParams carries a new password for a user.
type PasswordParams struct {
	ID       uint   `json:"id" validate:"required"`
	Password string `json:"password"`
}

// CategoryUpdateParams addresses a category and carries its new fields.
type CategoryUpdateParams struct {
	ID uint `json:"id" validate:"required"`
	service.CategoryInput
}

// TagUpdateParams addresses a tag and carries its new name.
type TagUpdateParams struct {
	ID uint `json:"id" validate:"required"`
	service.TagInput
}

// ServiceUpdateParams addresses a service and carries its new fields.
type ServiceUpdateParams struct {
	ID uint `json:"id" validate:"required"`
	service.ServiceInput
}

// ServiceSaveParams creates a service when ID is absent.
type ServiceSaveParams struct {
	ID *uint `json:"id"`
	service.ServiceInput
}

// ProductUpdateParams addresses a product and carries its new fields.
type ProductUpdateParams struct {
	ID uint `json:"id" validate:"required"`
	service.ProductInput
}

// ProductSaveParams creates a product when ID is absent.
type ProductSaveParams struct {
	ID *uint `json:"id"`
	service.ProductInput
}

// ProductParams addresses the children of a product.
type ProductParams struct {
	ProductID uint `json:"product_id" validate:"required"`
}

// ProductServiceParams links a service to a product.
type ProductServiceParams struct {
	ProductID uint `json:"product_id" validate:"required"`
	ServiceID uint `json:"service_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"gte=0"`
}

// ProductServicesSyncParams is the desired service bundle of a product.
type ProductServicesSyncParams struct {
	ProductID uint                    `json:"product_id" validate:"required"`
	Services  []model.ServiceQuantity `json:"services" validate:"dive"`
}

// ServiceParams addresses the children of a service.
type ServiceParams struct {
	ServiceID uint `json:"service_id" validate:"required"`
}

// ServiceTagParams links a tag to a service.
type ServiceTagParams struct {
	ServiceID uint `json:"service_id" validate:"required"`
	TagID     uint `json:"tag_id" validate:"required"`
}

// ServiceTagsSyncParams is the desired tag set of a service.
type ServiceTagsSyncParams struct {
	ServiceID uint   `json:"service_id" validate:"required"`
	TagIDs    []uint `json:"tag_ids"`
}

// ProductTagParams links a tag to a product.
type ProductTagParams struct {
	ProductID uint `json:"product_id" validate:"required"`
	TagID     uint `json:"tag_id" validate:"required"`
}

// ProductTagsSyncParams is the desired tag set of a product.
type ProductTagsSyncParams struct {
	ProductID uint   `json:"product_id" validate:"required"`
	TagIDs    []uint `json:"tag_ids"`
}

// PlanCreateParams adds a plan to a product.
type PlanCreateParams struct {
	ProductID uint `json:"product_id" validate:"required"`
	service.PlanInput
}

// PlanUpdateParams addresses a plan and carries its new fields.
type PlanUpdateParams struct {
	ID uint `json:"id" validate:"required"`
	service.PlanInput
}

// OptionUpdateParams addresses an option and carries its new fields.
type OptionUpdateParams struct {
	ID uint `json:"id" validate:"required"`
	service.OptionInput
}

// ProductOptionParams links an option to a product.
type ProductOptionParams struct {
	ProductID uint `json:"product_id" validate:"required"`
	OptionID  uint `json:"option_id" validate:"required"`
}

type none struct{}

func changes(n int64, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return Changes{Changes: n}, nil
}

// linked reports a link call; data is nil so the envelope carries success only.
func linked(err error) (any, error) {
	return nil, err
}

// RegisterCatalog binds every catalog channel to svc.
func RegisterCatalog(d *Dispatcher, svc Services) {
	registerUsers(d, svc.Users)
	registerCategories(d, svc.Categories)
	registerServices(d, svc.Services)
	registerProducts(d, svc.Products)
	registerTags(d, svc.Tags)
	registerPlans(d, svc.Plans)
	registerOptions(d, svc.Options)

	Handle(d, "dashboard:stats", func(ctx context.Context, _ none) (any, error) {
		return svc.Dashboard.Stats(ctx)
	})
}

func registerUsers(d *Dispatcher, users service.UserService) {
	Handle(d, "users:get-all", func(ctx context.Context, _ none) (any, error) {
		return users.ListUsers(ctx)
	})
	HandleCreate(d, "users:create", func(ctx context.Context, p service.UserInput) (any, error) {
		return users.CreateUser(ctx, p)
	})
	Handle(d, "users:update", func(ctx context.Context, p UserUpdateParams) (any, error) {
		return users.UpdateUser(ctx, p.ID, p.UserInput)
	})
	Handle(d, "users:delete", func(ctx context.Context, p IDParams) (any, error) {
		return changes(users.DeleteUser(ctx, p.ID))
	})
	Handle(d, "users:change-password", func(ctx context.Context, p PasswordParams) (any, error) {
		return changes(users.ChangePassword(ctx, p.ID, p.Password))
	})
}

func registerCategories(d *Dispatcher, categories service.CategoryService) {
	Handle(d, "categories:get-all", func(ctx context.Context, _ none) (any, error) {
		return categories.ListCategories(ctx)
	})
	HandleCreate(d, "categories:create", func(ctx context.Context, p service.CategoryInput) (any, error) {
		return categories.CreateCategory(ctx, p)
	})
	Handle(d, "categories:update", func(ctx context.Context, p CategoryUpdateParams) (any, error) {
		return categories.UpdateCategory(ctx, p.ID, p.CategoryInput)
	})
	Handle(d, "categories:delete", func(ctx context.Context, p IDParams) (any, error) {
		return changes(categories.DeleteCategory(ctx, p.ID))
	})
}

func registerServices(d *Dispatcher, services service.ServiceService) {
	Handle(d, "services:get-all", func(ctx context.Context, _ none) (any, error) {
		return services.ListServices(ctx)
	})
	Handle(d, "services:list", func(ctx context.Context, q listing.Query) (any, error) {
		return services.ListServiceDetails(ctx, q)
	})
	Handle(d, "services:get-by-id", func(ctx context.Context, p IDParams) (any, error) {
		return services.GetService(ctx, p.ID)
	})
	HandleCreate(d, "services:create", func(ctx context.Context, p service.ServiceInput) (any, error) {
		return services.CreateService(ctx, p)
	})
	Handle(d, "services:update", func(ctx context.Context, p ServiceUpdateParams) (any, error) {
		return services.UpdateService(ctx, p.ID, p.ServiceInput)
	})
	Handle(d, "services:delete", func(ctx context.Context, p IDParams) (any, error) {
		return changes(services.DeleteService(ctx, p.ID))
	})
	Handle(d, "services:save", func(ctx context.Context, p ServiceSaveParams) (any, error) {
		return services.SaveService(ctx, p.ID, p.ServiceInput)
	})
}

func registerProducts(d *Dispatcher, products service.ProductService) {
	Handle(d, "products:get-all", func(ctx context.Context, _ none) (any, error) {
		return products.ListProducts(ctx)
	})
	Handle(d, "products:list", func(ctx context.Context, q listing.Query) (any, error) {
		return products.ListProductDetails(ctx, q)
	})
	Handle(d, "products:showcase", func(ctx context.Context, q listing.Query) (any, error) {
		return products.Showcase(ctx, q)
	})
	Handle(d, "products:get-by-id", func(ctx context.Context, p IDParams) (any, error) {
		return products.GetProduct(ctx, p.ID)
	})
	HandleCreate(d, "products:create", func(ctx context.Context, p service.ProductInput) (any, error) {
		return products.CreateProduct(ctx, p)
	})
	Handle(d, "products:update", func(ctx context.Context, p ProductUpdateParams) (any, error) {
		return products.UpdateProduct(ctx, p.ID, p.ProductInput)
	})
	Handle(d, "products:delete", func(ctx context.Context, p IDParams) (any, error) {
		return changes(products.DeleteProduct(ctx, p.ID))
	})
	Handle(d, "products:save", func(ctx context.Context, p ProductSaveParams) (any, error) {
		return products.SaveProduct(ctx, p.ID, p.ProductInput)
	})
	Handle(d, "products:toggle-top", func(ctx context.Context, p IDParams) (any, error) {
		return products.ToggleTop(ctx, p.ID)
	})
	Handle(d, "products:toggle-carousel", func(ctx context.Context, p IDParams) (any, error) {
		return products.ToggleCarousel(ctx, p.ID)
	})

	Handle(d, "products:get-services", func(ctx context.Context, p ProductParams) (any, error) {
		return products.ListServices(ctx, p.ProductID)
	})
	Handle(d, "products:add-service", func(ctx context.Context, p ProductServiceParams) (any, error) {
		return linked(products.AddService(ctx, p.ProductID, model.ServiceQuantity{ServiceID: p.ServiceID, Quantity: p.Quantity}))
	})
	Handle(d, "products:remove-service", func(ctx context.Context, p ProductServiceParams) (any, error) {
		return changes(products.RemoveService(ctx, p.ProductID, p.ServiceID))
	})
	Handle(d, "products:sync-services", func(ctx context.Context, p ProductServicesSyncParams) (any, error) {
		return products.SyncServices(ctx, p.ProductID, p.Services)
	})
}

func registerTags(d *Dispatcher, tags service.TagService) {
	Handle(d, "tags:get-all", func(ctx context.Context, _ none) (any, error) {
		return tags.ListTags(ctx)
	})
	HandleCreate(d, "tags:create", func(ctx context.Context, p service.TagInput) (any, error) {
		return tags.CreateTag(ctx, p)
	})
	Handle(d, "tags:update", func(ctx context.Context, p TagUpdateParams) (any, error) {
		return tags.UpdateTag(ctx, p.ID, p.TagInput)
	})
	Handle(d, "tags:delete", func(ctx context.Context, p IDParams) (any, error) {
		return changes(tags.DeleteTag(ctx, p.ID))
	})

	Handle(d, "tags:get-for-service", func(ctx context.Context, p ServiceParams) (any, error) {
		return tags.TagsForService(ctx, p.ServiceID)
	})
	Handle(d, "tags:add-to-service", func(ctx context.Context, p ServiceTagParams) (any, error) {
		return linked(tags.AddTagToService(ctx, p.ServiceID, p.TagID))
	})
	Handle(d, "tags:remove-from-service", func(ctx context.Context, p ServiceTagParams) (any, error) {
		return changes(tags.RemoveTagFromService(ctx, p.ServiceID, p.TagID))
	})
	Handle(d, "tags:sync-service", func(ctx context.Context, p ServiceTagsSyncParams) (any, error) {
		return tags.SyncServiceTags(ctx, p.ServiceID, p.TagIDs)
	})

	Handle(d, "tags:get-for-product", func(ctx context.Context, p ProductParams) (any, error) {
		return tags.TagsForProduct(ctx, p.ProductID)
	})
	Handle(d, "tags:add-to-product", func(ctx context.Context, p ProductTagParams) (any, error) {
		return linked(tags.AddTagToProduct(ctx, p.ProductID, p.TagID))
	})
	Handle(d, "tags:remove-from-product", func(ctx context.Context, p ProductTagParams) (any, error) {
		return changes(tags.RemoveTagFromProduct(ctx, p.ProductID, p.TagID))
	})
	Handle(d, "tags:sync-product", func(ctx context.Context, p ProductTagsSyncParams) (any, error) {
		return tags.SyncProductTags(ctx, p.ProductID, p.TagIDs)
	})
}

func registerPlans(d *Dispatcher, plans service.PricingPlanService) {
	Handle(d, "pricing-plans:get-for-product", func(ctx context.Context, p ProductParams) (any, error) {
		return plans.ListPlans(ctx, p.ProductID)
	})
	HandleCreate(d, "pricing-plans:create", func(ctx context.Context, p PlanCreateParams) (any, error) {
		return plans.AddPlan(ctx, p.ProductID, p.PlanInput)
	})
	Handle(d, "pricing-plans:update", func(ctx context.Context, p PlanUpdateParams) (any, error) {
		return plans.UpdatePlan(ctx, p.ID, p.PlanInput)
	})
	Handle(d, "pricing-plans:delete", func(ctx context.Context, p IDParams) (any, error) {
		return changes(plans.DeletePlan(ctx, p.ID))
	})
}

func registerOptions(d *Dispatcher, options service.OptionService) {
	Handle(d, "options:get-all", func(ctx context.Context, _ none) (any, error) {
		return options.ListOptions(ctx)
	})
	HandleCreate(d, "options:create", func(ctx context.Context, p service.OptionInput) (any, error) {
		return options.CreateOption(ctx, p)
	})
	Handle(d, "options:update", func(ctx context.Context, p OptionUpdateParams) (any, error) {
		return options.UpdateOption(ctx, p.ID, p.OptionInput)
	})
	Handle(d, "options:delete", func(ctx context.Context, p IDParams) (any, error) {
		return changes(options.DeleteOption(ctx, p.ID))
	})
	Handle(d, "options:get-for-product", func(ctx context.Context, p ProductParams) (any, error) {
		return options.OptionsForProduct(ctx, p.ProductID)
	})
	Handle(d, "options:add-to-product", func(ctx context.Context, p ProductOptionParams) (any, error) {
		return linked(options.AddOptionToProduct(ctx, p.ProductID, p.OptionID))
	})
	Handle(d, "options:remove-from-product", func(ctx context.Context, p ProductOptionParams) (any, error) {
		return changes(options.RemoveOptionFromProduct(ctx, p.ProductID, p.OptionID))
	})
}
