package repository

import (
	"context"

	"github.com/fadilmartias/placement-portal/internal/database"
	"github.com/fadilmartias/placement-portal/internal/model"
	"gorm.io/gorm"
)

type DriveRepository struct {
	db *gorm.DB
}

func NewDriveRepository(db *gorm.DB) *DriveRepository {
	return &DriveRepository{db}
}

func (r *DriveRepository) Create(ctx context.Context, drive *model.Drive) error {
	db, err := database.Conn(ctx, r.db)
	if err != nil {
		return err
	}
	return db.Create(drive).Error
}

func (r *DriveRepository) FindByID(ctx context.Context, id string) (*model.Drive, error) {
	db, err := database.Conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var d model.Drive
	err = db.First(&d, "id = ?", id).Error
	return &d, err
}

func (r *DriveRepository) FindAll(ctx context.Context) ([]model.Drive, error) {
	db, err := database.Conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	drives := []model.Drive{}
	err = db.Find(&drives).Error
	return drives, err
}
