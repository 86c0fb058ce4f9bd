package usecase

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/fadilmartias/placement-portal/internal/dto"
	"github.com/fadilmartias/placement-portal/internal/model"
)

// CheckEligibility runs the CGPA, backlog, branch and graduation-year checks in
// that order. The year check only applies when the drive lists years.
func CheckEligibility(student *model.User, c model.Criteria) (bool, []dto.EligibilityCheck) {
	cgpa := deref(student.Cgpa)
	backlogs := deref(student.Backlogs)
	branch := deref(student.Branch)
	year := deref(student.GraduationYear)

	checks := make([]dto.EligibilityCheck, 0, 4)

	if cgpa >= c.MinCgpa {
		checks = append(checks, pass(fmt.Sprintf("Your CGPA %s meets the minimum requirement of %s.", formatNumber(cgpa), formatNumber(c.MinCgpa))))
	} else {
		checks = append(checks, fail(fmt.Sprintf("Your CGPA of %s is below the required %s.", formatNumber(cgpa), formatNumber(c.MinCgpa))))
	}

	if backlogs <= c.MaxBacklogs {
		checks = append(checks, pass(fmt.Sprintf("You have %d backlogs (Allowed: ≤%d).", backlogs, c.MaxBacklogs)))
	} else {
		checks = append(checks, fail(fmt.Sprintf("You have %d backlogs, which exceeds the limit of %d.", backlogs, c.MaxBacklogs)))
	}

	if slices.Contains(c.AllowedBranches, model.AllBranches) || slices.Contains(c.AllowedBranches, branch) {
		checks = append(checks, pass(fmt.Sprintf("Your branch (%s) is eligible.", branch)))
	} else {
		checks = append(checks, fail(fmt.Sprintf("Only [%s] branches are eligible. Your branch is %s.", strings.Join(c.AllowedBranches, ", "), branch)))
	}

	if len(c.EligibleGraduationYears) > 0 {
		if slices.Contains(c.EligibleGraduationYears, year) {
			checks = append(checks, pass(fmt.Sprintf("Graduation Year %d is eligible.", year)))
		} else {
			years := make([]string, len(c.EligibleGraduationYears))
			for i, y := range c.EligibleGraduationYears {
				years[i] = strconv.Itoa(y)
			}
			checks = append(checks, fail(fmt.Sprintf("Only %s batches are eligible. You graduate in %d.", strings.Join(years, ", "), year)))
		}
	}

	eligible := true
	for _, ch := range checks {
		eligible = eligible && ch.Passed
	}
	return eligible, checks
}

func pass(reason string) dto.EligibilityCheck { return dto.EligibilityCheck{Passed: true, Reason: reason} }

func fail(reason string) dto.EligibilityCheck { return dto.EligibilityCheck{Passed: false, Reason: reason} }

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
