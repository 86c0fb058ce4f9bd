package seed

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/fadilmartias/placement-portal/internal/model"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var demoData []byte

type userRecord struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Email          string   `yaml:"email"`
	Password       string   `yaml:"password"`
	Role           string   `yaml:"role"`
	RollNo         *string  `yaml:"rollNo"`
	Cgpa           *float64 `yaml:"cgpa"`
	Branch         *string  `yaml:"branch"`
	Backlogs       *int     `yaml:"backlogs"`
	Skills         []string `yaml:"skills"`
	GraduationYear *int     `yaml:"graduationYear"`
	Industry       *string  `yaml:"industry"`
}

type driveRecord struct {
	ID          string         `yaml:"id"`
	CompanyID   string         `yaml:"companyId"`
	CompanyName string         `yaml:"companyName"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Role        string         `yaml:"role"`
	Ctc         string         `yaml:"ctc"`
	Location    string         `yaml:"location"`
	Category    string         `yaml:"category"`
	Deadline    string         `yaml:"deadline"`
	Criteria    model.Criteria `yaml:"criteria"`
}

type Dataset struct {
	Users  []userRecord  `yaml:"users"`
	Drives []driveRecord `yaml:"drives"`
}

type UserStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *model.User) error
}

type DriveStore interface {
	Create(ctx context.Context, drive *model.Drive) error
}

func LoadDataset() (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(demoData, &ds); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &ds, nil
}

// Run inserts the demo dataset when the users table is empty and reports whether it did.
// A failure halfway leaves whatever rows were already written.
func Run(ctx context.Context, users UserStore, drives DriveStore, lgr zerolog.Logger) (bool, error) {
	n, err := users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		lgr.Debug().Int64("users", n).Msg("Seed skipped, users table not empty")
		return false, nil
	}

	ds, err := LoadDataset()
	if err != nil {
		return false, err
	}

	lgr.Info().Msg("Seeding demo data...")
	for _, u := range ds.Users {
		user := &model.User{
			ID:             u.ID,
			Name:           u.Name,
			Email:          u.Email,
			Password:       u.Password,
			Role:           u.Role,
			RollNo:         u.RollNo,
			Cgpa:           u.Cgpa,
			Branch:         u.Branch,
			Backlogs:       u.Backlogs,
			GraduationYear: u.GraduationYear,
			Industry:       u.Industry,
		}
		if u.Skills != nil {
			user.Skills = model.StringList(u.Skills)
		}
		if err := users.Create(ctx, user); err != nil {
			return false, fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	for _, d := range ds.Drives {
		drive := &model.Drive{
			ID:          d.ID,
			CompanyID:   d.CompanyID,
			CompanyName: d.CompanyName,
			Title:       d.Title,
			Description: d.Description,
			Role:        d.Role,
			Ctc:         d.Ctc,
			Location:    d.Location,
			Criteria:    d.Criteria,
			Category:    d.Category,
			Deadline:    d.Deadline,
		}
		if err := drives.Create(ctx, drive); err != nil {
			return false, fmt.Errorf("seed drive %s: %w", d.ID, err)
		}
	}
	lgr.Info().Int("users", len(ds.Users)).Int("drives", len(ds.Drives)).Msg("Seeding complete")
	return true, nil
}
