package model

const (
	RoleStudent = "student"
	RoleCompany = "company"
)

// User holds both students and companies. Student-only columns stay NULL for companies
// and Industry stays NULL for students.
type User struct {
	ID             string     `gorm:"column:id;primaryKey" json:"id"`
	Name           string     `gorm:"column:name" json:"name"`
	Email          string     `gorm:"column:email;unique" json:"email"`
	Password       string     `gorm:"column:password" json:"-"`
	Role           string     `gorm:"column:role" json:"role"`
	RollNo         *string    `gorm:"column:rollNo" json:"rollNo"`
	Cgpa           *float64   `gorm:"column:cgpa" json:"cgpa"`
	Branch         *string    `gorm:"column:branch" json:"branch"`
	Backlogs       *int       `gorm:"column:backlogs" json:"backlogs"`
	Skills         StringList `gorm:"column:skills;type:text" json:"skills"`
	GraduationYear *int       `gorm:"column:graduationYear" json:"graduationYear"`
	Resume         *string    `gorm:"column:resume" json:"resume"`
	Industry       *string    `gorm:"column:industry" json:"industry"`
}

func (u *User) TableName() string {
	return "users"
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
