package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/placement-portal/internal/dto"
	"github.com/fadilmartias/placement-portal/internal/model"
	"github.com/fadilmartias/placement-portal/internal/repository"
	"gorm.io/gorm"
)

type DriveUsecase struct {
	driveRepo       *repository.DriveRepository
	userRepo        *repository.UserRepository
	applicationRepo *repository.ApplicationRepository
}

func NewDriveUsecase(driveRepo *repository.DriveRepository, userRepo *repository.UserRepository, applicationRepo *repository.ApplicationRepository) *DriveUsecase {
	return &DriveUsecase{driveRepo: driveRepo, userRepo: userRepo, applicationRepo: applicationRepo}
}

func (uc *DriveUsecase) List(ctx context.Context) ([]model.Drive, error) {
	return uc.driveRepo.FindAll(ctx)
}

func (uc *DriveUsecase) Eligibility(ctx context.Context, driveID, studentID string) (*dto.EligibilityResult, error) {
	student, err := uc.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	drive, err := uc.driveRepo.FindByID(ctx, driveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("drive %s: %w", driveID, ErrNotFound)
		}
		return nil, err
	}

	eligible, checks := CheckEligibility(student, drive.Criteria)
	return &dto.EligibilityResult{
		DriveID:    drive.ID,
		StudentID:  student.ID,
		IsEligible: eligible,
		Checks:     checks,
	}, nil
}

// Recommended lists the drives the student qualifies for and has not applied to yet.
func (uc *DriveUsecase) Recommended(ctx context.Context, studentID string) ([]dto.RecommendedDrive, error) {
	student, err := uc.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	drives, err := uc.driveRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := uc.applicationRepo.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(apps))
	for _, a := range apps {
		applied[a.DriveID] = true
	}

	out := []dto.RecommendedDrive{}
	for _, d := range drives {
		if applied[d.ID] {
			continue
		}
		if eligible, checks := CheckEligibility(student, d.Criteria); eligible {
			out = append(out, dto.RecommendedDrive{Drive: d, Checks: checks})
		}
	}
	return out, nil
}

func (uc *DriveUsecase) findStudent(ctx context.Context, studentID string) (*model.User, error) {
	if studentID == "" {
		return nil, ErrMissingStudentID
	}
	student, err := uc.userRepo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student %s: %w", studentID, ErrNotFound)
		}
		return nil, err
	}
	if !student.IsStudent() {
		return nil, ErrNotStudent
	}
	return student, nil
}
