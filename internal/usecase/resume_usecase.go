package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/fadilmartias/placement-portal/internal/logger"
	"github.com/fadilmartias/placement-portal/internal/repository"
	"github.com/fadilmartias/placement-portal/internal/storage"
	"github.com/fadilmartias/placement-portal/internal/util"
)

type ResumeUsecase struct {
	userRepo *repository.UserRepository
	files    storage.FileStorage
}

func NewResumeUsecase(userRepo *repository.UserRepository, files storage.FileStorage) *ResumeUsecase {
	return &ResumeUsecase{userRepo: userRepo, files: files}
}

// Upload stores the file as "<studentId>_<original name>" (sanitised) and points
// the user's resume column at it. A failed update leaves the stored file behind.
func (uc *ResumeUsecase) Upload(ctx context.Context, studentID, originalName string, r io.Reader) (string, error) {
	if studentID == "" || originalName == "" {
		return "", ErrMissingUploadField
	}

	filename := util.SecureFilename(fmt.Sprintf("%s_%s", studentID, originalName))
	if filename == "" {
		return "", ErrInvalidFilename
	}

	if err := uc.files.Save(ctx, filename, r); err != nil {
		return "", fmt.Errorf("store resume: %w", err)
	}
	if err := uc.userRepo.UpdateResume(ctx, studentID, filename); err != nil {
		return "", fmt.Errorf("update resume column: %w", err)
	}

	logger.Info().Str("student_id", studentID).Str("filename", filename).Str("storage", uc.files.Driver()).Msg("Resume stored")
	return filename, nil
}
