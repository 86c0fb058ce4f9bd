package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/placement-portal/internal/dto"
	"github.com/fadilmartias/placement-portal/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCheckEligibility_AllPass(t *testing.T) {
	student := &model.User{Cgpa: ptr(8.5), Backlogs: ptr(0), Branch: ptr("CSE"), GraduationYear: ptr(2024)}
	c := model.Criteria{MinCgpa: 7.5, AllowedBranches: []string{"CSE", "IT", "ECE"}, MaxBacklogs: 0, EligibleGraduationYears: []int{2024, 2025}}

	ok, checks := CheckEligibility(student, c)
	assert.True(t, ok)
	require.Len(t, checks, 4)
	assert.Equal(t, "Your CGPA 8.5 meets the minimum requirement of 7.5.", checks[0].Reason)
	assert.Equal(t, "You have 0 backlogs (Allowed: ≤0).", checks[1].Reason)
	assert.Equal(t, "Your branch (CSE) is eligible.", checks[2].Reason)
	assert.Equal(t, "Graduation Year 2024 is eligible.", checks[3].Reason)
}

func TestCheckEligibility_Failures(t *testing.T) {
	student := &model.User{Cgpa: ptr(7.2), Backlogs: ptr(1), Branch: ptr("ECE"), GraduationYear: ptr(2024)}
	c := model.Criteria{MinCgpa: 7.5, AllowedBranches: []string{"CSE", "IT"}, MaxBacklogs: 0, EligibleGraduationYears: []int{2023}}

	ok, checks := CheckEligibility(student, c)
	assert.False(t, ok)
	require.Len(t, checks, 4)
	for _, ch := range checks {
		assert.False(t, ch.Passed, ch.Reason)
	}
	assert.Equal(t, "Your CGPA of 7.2 is below the required 7.5.", checks[0].Reason)
	assert.Equal(t, "You have 1 backlogs, which exceeds the limit of 0.", checks[1].Reason)
	assert.Equal(t, "Only [CSE, IT] branches are eligible. Your branch is ECE.", checks[2].Reason)
	assert.Equal(t, "Only 2023 batches are eligible. You graduate in 2024.", checks[3].Reason)
}

func TestCheckEligibility_AllBranchesAndNoYears(t *testing.T) {
	student := &model.User{Cgpa: ptr(6.0), Backlogs: ptr(2), Branch: ptr("Mechanical")}
	c := model.Criteria{MinCgpa: 0, AllowedBranches: []string{model.AllBranches}, MaxBacklogs: 10}

	ok, checks := CheckEligibility(student, c)
	assert.True(t, ok)
	assert.Len(t, checks, 3)
	assert.Equal(t, "Your CGPA 6 meets the minimum requirement of 0.", checks[0].Reason)
}

func TestDriveUsecase_Eligibility(t *testing.T) {
	r := seededRepos(t)
	uc := NewDriveUsecase(r.drives, r.users, r.apps)
	ctx := context.Background()

	res, err := uc.Eligibility(ctx, "d1", "s1")
	require.NoError(t, err)
	assert.True(t, res.IsEligible)
	assert.Equal(t, "d1", res.DriveID)

	res, err = uc.Eligibility(ctx, "d1", "s2")
	require.NoError(t, err)
	assert.False(t, res.IsEligible)

	_, err = uc.Eligibility(ctx, "d1", "")
	assert.ErrorIs(t, err, ErrMissingStudentID)
	_, err = uc.Eligibility(ctx, "d99", "s1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = uc.Eligibility(ctx, "d1", "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = uc.Eligibility(ctx, "d1", "c1")
	assert.ErrorIs(t, err, ErrNotStudent)
}

func TestDriveUsecase_Recommended(t *testing.T) {
	r := seededRepos(t)
	uc := NewDriveUsecase(r.drives, r.users, r.apps)
	apps := NewApplicationUsecase(r.apps, validator.New()).WithClock(fixedClock(1718000000))
	ctx := context.Background()

	ids := func(ds []dto.RecommendedDrive) []string {
		out := make([]string, 0, len(ds))
		for _, d := range ds {
			out = append(out, d.ID)
		}
		return out
	}

	// Rahul: CSE, 8.5, 0 backlogs, class of 2024.
	recs, err := uc.Recommended(ctx, "s1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"d1", "d2", "d3", "d4", "d5", "d6"}, ids(recs))

	_, err = apps.Create(ctx, dto.CreateApplicationRequest{DriveID: "d3", StudentID: "s1"})
	require.NoError(t, err)
	recs, err = uc.Recommended(ctx, "s1")
	require.NoError(t, err)
	assert.NotContains(t, ids(recs), "d3")

	// Priya: ECE, 7.2, 1 backlog.
	recs, err = uc.Recommended(ctx, "s2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"d4", "d5", "d6"}, ids(recs))
}

func TestDriveUsecase_ListKeepsCriteria(t *testing.T) {
	r := seededRepos(t)
	drives, err := NewDriveUsecase(r.drives, r.users, r.apps).List(context.Background())
	require.NoError(t, err)
	require.Len(t, drives, 6)
	for _, d := range drives {
		assert.NotEmpty(t, d.Criteria.AllowedBranches, d.ID)
	}
}
