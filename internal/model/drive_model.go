package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	CategoryInternship  = "Internship"
	CategoryJob         = "Job"
	CategoryCompetition = "Competition"
	CategoryMentorship  = "Mentorship"
	CategoryMockTest    = "Mock Test"
)

// AllBranches in AllowedBranches opens a drive to every branch.
const AllBranches = "All"

type Criteria struct {
	MinCgpa                 float64  `json:"minCgpa" yaml:"minCgpa"`
	AllowedBranches         []string `json:"allowedBranches" yaml:"allowedBranches"`
	MaxBacklogs             int      `json:"maxBacklogs" yaml:"maxBacklogs"`
	RequiredSkills          []string `json:"requiredSkills" yaml:"requiredSkills"`
	EligibleGraduationYears []int    `json:"eligibleGraduationYears" yaml:"eligibleGraduationYears"`

	// raw is the stored blob. It is written back and served untouched so keys
	// the typed fields don't know about survive.
	raw json.RawMessage
}

// Value stores the criteria as a JSON blob; the server never queries inside it.
func (c Criteria) Value() (driver.Value, error) {
	b, err := c.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c Criteria) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	type plain Criteria
	return json.Marshal(plain(c))
}

func (c *Criteria) Scan(src any) error {
	raw, err := textBytes(src)
	if err != nil {
		return err
	}
	*c = Criteria{}
	if raw == nil {
		return nil
	}
	type plain Criteria
	var decoded plain
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("decode drive criteria: %w", err)
	}
	*c = Criteria(decoded)
	c.raw = append(json.RawMessage(nil), raw...)
	return nil
}

type Drive struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	CompanyID   string    `gorm:"column:companyId" json:"companyId"`
	CompanyName string    `gorm:"column:companyName" json:"companyName"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Role        string    `gorm:"column:role" json:"role"`
	Ctc         string    `gorm:"column:ctc" json:"ctc"`
	Location    string    `gorm:"column:location" json:"location"`
	Criteria    Criteria  `gorm:"column:criteria;type:text" json:"criteria"`
	Category    string    `gorm:"column:category" json:"category"`
	Deadline    string    `gorm:"column:deadline" json:"deadline"`
	CreatedAt   time.Time `gorm:"column:createdAt" json:"createdAt"`
}

func (d *Drive) TableName() string {
	return "drives"
}
