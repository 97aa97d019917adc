// Package listing applies the search, filter and sort controls of the catalog
// list screens to already loaded rows.
package listing

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/model"
)

// Sort keys accepted by Query.SortBy.
const (
	SortByID        = "id"
	SortByName      = "name"
	SortByPrice     = "price"
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
)

// Query holds the list screen controls. The zero value matches everything in id order.
type Query struct {
	Search      string `json:"search" query:"search"`
	TagIDs      []uint `json:"tag_ids" query:"tag_ids"`
	CategoryIDs []uint `json:"category_ids" query:"category_ids"`
	SortBy      string `json:"sort_by" query:"sort_by" validate:"omitempty,oneof=id name price created_at updated_at"`
	Desc        bool   `json:"desc" query:"desc"`
}

// row is what the predicates need to know about a listed item.
type row struct {
	id         uint
	name       string
	price      decimal.Decimal
	createdAt  time.Time
	updatedAt  time.Time
	tags       []model.Tag
	categories []uint
}

func apply[T any](items []T, q Query, view func(T) row) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]T, 0, len(items))
	for _, it := range items {
		r := view(it)
		if needle != "" && !strings.Contains(strings.ToLower(r.name), needle) {
			continue
		}
		if !anyTag(r.tags, q.TagIDs) || !anyID(r.categories, q.CategoryIDs) {
			continue
		}
		out = append(out, it)
	}

	slices.SortStableFunc(out, func(a, b T) int {
		c := compare(view(a), view(b), q.SortBy)
		if q.Desc {
			return -c
		}
		return c
	})
	return out
}

func compare(a, b row, by string) int {
	switch by {
	case SortByName:
		return cmp.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
	case SortByPrice:
		return a.price.Cmp(b.price)
	case SortByCreatedAt:
		return a.createdAt.Compare(b.createdAt)
	case SortByUpdatedAt:
		return a.updatedAt.Compare(b.updatedAt)
	default:
		return cmp.Compare(a.id, b.id)
	}
}

// anyTag reports whether tags intersects want; an empty want matches everything.
func anyTag(tags []model.Tag, want []uint) bool {
	if len(want) == 0 {
		return true
	}
	for _, t := range tags {
		if slices.Contains(want, t.ID) {
			return true
		}
	}
	return false
}

func anyID(ids []uint, want []uint) bool {
	if len(want) == 0 {
		return true
	}
	for _, id := range ids {
		if slices.Contains(want, id) {
			return true
		}
	}
	return false
}

func productRow(p model.ProductDetail) row {
	cats := make([]uint, 0, len(p.Categories))
	for _, c := range p.Categories {
		cats = append(cats, c.ID)
	}
	// Unpriced products sort as zero.
	price := decimal.Zero
	if p.Price.Valid {
		price = p.Price.Decimal
	}
	return row{
		id:         p.ID,
		name:       p.Name,
		price:      price,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
		tags:       p.Tags,
		categories: cats,
	}
}

func serviceRow(s model.ServiceDetail) row {
	var cats []uint
	if s.CategoryID != nil {
		cats = []uint{*s.CategoryID}
	}
	return row{
		id:         s.ID,
		name:       s.Name,
		price:      decimal.Zero,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
		tags:       s.Tags,
		categories: cats,
	}
}

// Products filters and sorts product details.
func Products(items []model.ProductDetail, q Query) []model.ProductDetail {
	return apply(items, q, productRow)
}

// Services filters and sorts service details. Services carry no price, so a
// price sort keeps them in their loaded order.
func Services(items []model.ServiceDetail, q Query) []model.ServiceDetail {
	return apply(items, q, serviceRow)
}

// Showcase splits products into carousel, top and the remaining catalog. A product
// both in the carousel and on top appears in both sections. Only the remaining
// catalog is searched, filtered and sorted.
func Showcase(items []model.ProductDetail, q Query) model.Showcase {
	sc := model.Showcase{
		Carousel: []model.ProductDetail{},
		Top:      []model.ProductDetail{},
	}
	others := make([]model.ProductDetail, 0, len(items))
	for _, p := range items {
		if p.IsInCarousel {
			sc.Carousel = append(sc.Carousel, p)
		}
		if p.IsTopProduct {
			sc.Top = append(sc.Top, p)
		}
		if !p.IsInCarousel && !p.IsTopProduct {
			others = append(others, p)
		}
	}
	sc.Others = Products(others, q)
	return sc
}
