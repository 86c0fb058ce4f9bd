package dto

import "github.com/fadilmartias/placement-portal/internal/model"

type EligibilityCheck struct {
	Passed bool   `json:"passed"`
	Reason string `json:"reason"`
}

type EligibilityResult struct {
	DriveID    string             `json:"driveId"`
	StudentID  string             `json:"studentId"`
	IsEligible bool               `json:"isEligible"`
	Checks     []EligibilityCheck `json:"checks"`
}

type RecommendedDrive struct {
	model.Drive
	Checks []EligibilityCheck `json:"checks"`
}
