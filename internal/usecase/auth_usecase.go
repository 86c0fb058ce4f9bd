package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/placement-portal/internal/dto"
	"github.com/fadilmartias/placement-portal/internal/model"
	"github.com/fadilmartias/placement-portal/internal/repository"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MockToken is handed out on every successful login or registration.
const MockToken = "mock-jwt-token"

// Registration only collects a handful of fields; the rest get these placeholders.
const (
	registerPassword = "pass"
	registerRollNo   = "NEW-001"
	registerBranch   = "CSE"
)

type AuthUsecase struct {
	userRepo *repository.UserRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewAuthUsecase(userRepo *repository.UserRepository, validate *validator.Validate) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, validate: validate, now: time.Now}
}

func (uc *AuthUsecase) WithClock(now func() time.Time) *AuthUsecase {
	uc.now = now
	return uc
}

func (uc *AuthUsecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmailAndRole(ctx, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if req.Password != "" && req.Password != user.Password {
		return nil, ErrInvalidCredentials
	}
	return &dto.LoginResponse{Token: MockToken, User: user}, nil
}

// Register stores a new student-shaped row. Ids come from the clock in whole
// seconds, so two registrations in the same second collide on the primary key.
func (uc *AuthUsecase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := uc.validate.StructCtx(ctx, req); err != nil {
		return nil, err
	}

	skills := model.StringList(req.Skills)
	if skills == nil {
		skills = model.StringList{}
	}
	rollNo, branch, backlogs := registerRollNo, registerBranch, 0

	user := &model.User{
		ID:             fmt.Sprintf("s-%d", uc.now().Unix()),
		Name:           req.Name,
		Email:          req.Email,
		Password:       registerPassword,
		Role:           req.Role,
		RollNo:         &rollNo,
		Cgpa:           req.Cgpa,
		Branch:         &branch,
		Backlogs:       &backlogs,
		Skills:         skills,
		GraduationYear: req.GraduationYear,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	echo := make(map[string]any, len(req.Input)+7)
	for k, v := range req.Input {
		echo[k] = v
	}
	delete(echo, "password")
	echo["id"] = user.ID
	echo["name"] = req.Name
	echo["email"] = req.Email
	echo["role"] = req.Role
	echo["cgpa"] = *req.Cgpa
	echo["graduationYear"] = *req.GraduationYear
	echo["skills"] = []string(skills)

	return &dto.RegisterResponse{Token: MockToken, User: echo}, nil
}
