package model

import "time"

// StatusApplied is the only status the portal ever writes.
const StatusApplied = "Applied"

type Application struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	DriveID   string    `gorm:"column:driveId" json:"driveId"`
	StudentID string    `gorm:"column:studentId" json:"studentId"`
	Status    string    `gorm:"column:status" json:"status"`
	AppliedAt time.Time `gorm:"column:appliedAt" json:"appliedAt"`

	// Declared for the schema only; sqlite does not enforce them unless foreign_keys is on.
	Drive   *Drive `gorm:"foreignKey:DriveID;references:ID" json:"-"`
	Student *User  `gorm:"foreignKey:StudentID;references:ID" json:"-"`
}

func (a *Application) TableName() string {
	return "applications"
}
