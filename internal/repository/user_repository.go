package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// UserRepository defines persistence operations for back-office users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Update(ctx context.Context, id uint, user *model.User) (*model.User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return first[model.User](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return first[model.User](r.db.WithContext(ctx).Where("username = ?", username))
}

// Update changes username and role only; passwords go through UpdatePassword.
func (r *userRepository) Update(ctx context.Context, id uint, user *model.User) (*model.User, error) {
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"username":   user.Username,
		"role":       user.Role,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	return res.RowsAffected, res.Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	return res.RowsAffected, res.Error
}
