package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/placement-portal/internal/dto"
	"github.com/fadilmartias/placement-portal/internal/model"
	"github.com/fadilmartias/placement-portal/internal/repository"
	"github.com/go-playground/validator/v10"
)

type ApplicationUsecase struct {
	applicationRepo *repository.ApplicationRepository
	validate        *validator.Validate
	now             func() time.Time
}

func NewApplicationUsecase(applicationRepo *repository.ApplicationRepository, validate *validator.Validate) *ApplicationUsecase {
	return &ApplicationUsecase{applicationRepo: applicationRepo, validate: validate, now: time.Now}
}

func (uc *ApplicationUsecase) WithClock(now func() time.Time) *ApplicationUsecase {
	uc.now = now
	return uc
}

// List returns an empty list, not an error, when studentID is empty.
func (uc *ApplicationUsecase) List(ctx context.Context, studentID string) ([]model.Application, error) {
	return uc.applicationRepo.FindByStudentID(ctx, studentID)
}

// Create neither checks that the drive and student exist nor rejects a repeat application.
func (uc *ApplicationUsecase) Create(ctx context.Context, req dto.CreateApplicationRequest) (*dto.CreateApplicationResponse, error) {
	if err := uc.validate.StructCtx(ctx, req); err != nil {
		return nil, err
	}

	now := uc.now()
	app := &model.Application{
		ID:        fmt.Sprintf("app-%d", now.Unix()),
		DriveID:   req.DriveID,
		StudentID: req.StudentID,
		Status:    model.StatusApplied,
		AppliedAt: now,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return &dto.CreateApplicationResponse{ID: app.ID, Status: app.Status}, nil
}
