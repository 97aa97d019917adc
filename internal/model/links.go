package model

// ProductService links a product to a service with the included volume.
type ProductService struct {
	ProductID    uint `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	ServiceID    uint `json:"service_id" gorm:"primaryKey;autoIncrement:false"`
	Quantity     int  `json:"quantity"`
	DisplayOrder int  `json:"display_order"`
}

func (ProductService) TableName() string { return "product_services" }

// ProductTag links a product to a tag.
type ProductTag struct {
	ProductID uint `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
}

func (ProductTag) TableName() string { return "product_tags" }

// ServiceTag links a service to a tag.
type ServiceTag struct {
	ServiceID uint `json:"service_id" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
}

func (ServiceTag) TableName() string { return "service_tags" }

// OptionProduct links an option to a product.
type OptionProduct struct {
	ProductID uint `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	OptionID  uint `json:"option_id" gorm:"primaryKey;autoIncrement:false"`
}

func (OptionProduct) TableName() string { return "option_products" }

// ServiceQuantity is a desired product-service link.
type ServiceQuantity struct {
	ServiceID uint `json:"service_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"gte=0"`
}
