package repository

import (
	"context"

	"github.com/fadilmartias/placement-portal/internal/database"
	"github.com/fadilmartias/placement-portal/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	db, err := database.Conn(ctx, r.db)
	if err != nil {
		return err
	}
	return db.Create(user).Error
}

func (r *UserRepository) FindByEmailAndRole(ctx context.Context, email, role string) (*model.User, error) {
	db, err := database.Conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var u model.User
	err = db.Where(map[string]any{"email": email, "role": role}).First(&u).Error
	return &u, err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	db, err := database.Conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var u model.User
	err = db.First(&u, "id = ?", id).Error
	return &u, err
}

// UpdateResume touches only the resume column. An unknown id updates nothing and is not an error.
func (r *UserRepository) UpdateResume(ctx context.Context, id, filename string) error {
	db, err := database.Conn(ctx, r.db)
	if err != nil {
		return err
	}
	return db.Model(&model.User{ID: id}).Update("resume", filename).Error
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	db, err := database.Conn(ctx, r.db)
	if err != nil {
		return 0, err
	}
	var n int64
	err = db.Model(&model.User{}).Count(&n).Error
	return n, err
}
