package repository

import (
	"context"

	"github.com/fadilmartias/placement-portal/internal/database"
	"github.com/fadilmartias/placement-portal/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	db, err := database.Conn(ctx, r.db)
	if err != nil {
		return err
	}
	return db.Create(app).Error
}

func (r *ApplicationRepository) FindByStudentID(ctx context.Context, studentID string) ([]model.Application, error) {
	db, err := database.Conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	apps := []model.Application{}
	err = db.Where(map[string]any{"studentId": studentID}).Find(&apps).Error
	return apps, err
}
