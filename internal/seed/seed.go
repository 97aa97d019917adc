// Package seed inserts the starter catalog into an empty or partial database.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/service"
)

// Report counts the rows created by a run. Rows already present are not counted.
type Report struct {
	Users      int `json:"users"`
	Categories int `json:"categories"`
	Tags       int `json:"tags"`
	Services   int `json:"services"`
	Products   int `json:"products"`
}

// Total is the number of rows created.
func (r Report) Total() int {
	return r.Users + r.Categories + r.Tags + r.Services + r.Products
}

type userSeed struct {
	username, password, role string
}

type categorySeed struct {
	name, description string
}

type serviceSeed struct {
	name, description, category, tag string
}

type productSeed struct {
	name, description, segment string
	carousel                   bool
}

var (
	users = []userSeed{
		{"admin", "admin123", model.RoleAdmin},
		{"user", "user123", model.RoleUser},
	}
	categories = []categorySeed{
		{"Support", "Technical support services"},
		{"Consulting", "Expert consulting"},
		{"Development", "Software development"},
	}
	tags     = []string{"Support", "Development", "SME"}
	services = []serviceSeed{
		{"Level 1 Support", "Basic email support", "Support", "Support"},
		{"Level 2 Support", "Phone and email support", "Support", "Support"},
		{"Web Development", "React/Node development", "Development", "Development"},
	}
	products = []productSeed{
		{"Starter Pack", "Essential tools for small teams", "SME", true},
		{"Pro Pack", "Advanced features for scaling businesses", "Mid-Market", true},
		{"Enterprise Suite", "Full access with dedicated support", "Enterprise", false},
	}
)

// Run inserts every starter row whose natural key (username or name) is not
// taken yet. Running it twice creates nothing the second time.
func Run(ctx context.Context, repos *repository.Repositories, log *zap.Logger) (Report, error) {
	var report Report
	err := repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		report = Report{}
		if err := seedUsers(ctx, tx, log, &report); err != nil {
			return err
		}
		categoryIDs, err := seedCategories(ctx, tx, log, &report)
		if err != nil {
			return err
		}
		tagIDs, err := seedTags(ctx, tx, log, &report)
		if err != nil {
			return err
		}
		if err := seedServices(ctx, tx, log, &report, categoryIDs, tagIDs); err != nil {
			return err
		}
		return seedProducts(ctx, tx, log, &report)
	})
	if err != nil {
		return Report{}, err
	}
	log.Info("seeding completed", zap.Int("created", report.Total()))
	return report, nil
}

func seedUsers(ctx context.Context, tx *repository.Repositories, log *zap.Logger, report *Report) error {
	for _, u := range users {
		existing, err := tx.Users.FindByUsername(ctx, u.username)
		if err != nil {
			return fmt.Errorf("seed check user %s: %w", u.username, err)
		}
		if existing != nil {
			continue
		}
		hash, err := service.HashPassword(u.password)
		if err != nil {
			return err
		}
		if err := tx.Users.Create(ctx, &model.User{Username: u.username, PasswordHash: hash, Role: u.role}); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		report.Users++
		log.Info("user seeded", zap.String("username", u.username))
	}
	return nil
}

func seedCategories(ctx context.Context, tx *repository.Repositories, log *zap.Logger, report *Report) (map[string]uint, error) {
	ids := make(map[string]uint, len(categories))
	for _, c := range categories {
		existing, err := tx.Categories.FindByName(ctx, c.name)
		if err != nil {
			return nil, fmt.Errorf("seed check category %s: %w", c.name, err)
		}
		if existing != nil {
			ids[c.name] = existing.ID
			continue
		}
		category := &model.Category{Name: c.name, Description: c.description}
		if err := tx.Categories.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("seed category %s: %w", c.name, err)
		}
		ids[c.name] = category.ID
		report.Categories++
		log.Info("category seeded", zap.String("name", c.name))
	}
	return ids, nil
}

func seedTags(ctx context.Context, tx *repository.Repositories, log *zap.Logger, report *Report) (map[string]uint, error) {
	ids := make(map[string]uint, len(tags))
	for _, name := range tags {
		existing, err := tx.Tags.FindByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("seed check tag %s: %w", name, err)
		}
		if existing != nil {
			ids[name] = existing.ID
			continue
		}
		tag := &model.Tag{Name: name}
		if err := tx.Tags.Create(ctx, tag); err != nil {
			return nil, fmt.Errorf("seed tag %s: %w", name, err)
		}
		ids[name] = tag.ID
		report.Tags++
		log.Info("tag seeded", zap.String("name", name))
	}
	return ids, nil
}

func seedServices(ctx context.Context, tx *repository.Repositories, log *zap.Logger, report *Report, categoryIDs, tagIDs map[string]uint) error {
	for _, s := range services {
		existing, err := tx.Services.FindByName(ctx, s.name)
		if err != nil {
			return fmt.Errorf("seed check service %s: %w", s.name, err)
		}
		if existing != nil {
			continue
		}
		svc := &model.Service{Name: s.name, Description: s.description}
		if id, ok := categoryIDs[s.category]; ok {
			svc.CategoryID = &id
		}
		if err := tx.Services.Create(ctx, svc); err != nil {
			return fmt.Errorf("seed service %s: %w", s.name, err)
		}
		if id, ok := tagIDs[s.tag]; ok {
			if err := tx.Tags.AddToService(ctx, svc.ID, id); err != nil {
				return fmt.Errorf("seed service %s tag: %w", s.name, err)
			}
		}
		report.Services++
		log.Info("service seeded", zap.String("name", s.name))
	}
	return nil
}

func seedProducts(ctx context.Context, tx *repository.Repositories, log *zap.Logger, report *Report) error {
	for _, p := range products {
		existing, err := tx.Products.FindByName(ctx, p.name)
		if err != nil {
			return fmt.Errorf("seed check product %s: %w", p.name, err)
		}
		if existing != nil {
			continue
		}
		product := &model.Product{
			Name:          p.name,
			Description:   p.description,
			TargetSegment: p.segment,
			IsInCarousel:  p.carousel,
		}
		if err := tx.Products.Create(ctx, product); err != nil {
			return fmt.Errorf("seed product %s: %w", p.name, err)
		}
		report.Products++
		log.Info("product seeded", zap.String("name", p.name))
	}
	return nil
}
