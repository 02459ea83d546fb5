package models

import "time"

// SalaryGrade monetary columns are NUMERIC in the database and carried as
// decimal strings to avoid float rounding.
type SalaryGrade struct {
	ID          int64      `db:"id" json:"id"`
	GradeName   string     `db:"grade_name" json:"grade_name"`
	BaseSalary  string     `db:"base_salary" json:"base_salary"`
	Coefficient string     `db:"coefficient" json:"coefficient"`
	Deleted     bool       `db:"deleted" json:"deleted"`
	DeletedAt   *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateSalaryGradeInput struct {
	GradeName   string  `json:"grade_name" binding:"required"`
	BaseSalary  *string `json:"base_salary"`
	Coefficient *string `json:"coefficient"`
}

type UpdateSalaryGradeInput struct {
	GradeName   *string `json:"grade_name"`
	BaseSalary  *string `json:"base_salary"`
	Coefficient *string `json:"coefficient"`
}

func (g *SalaryGrade) Apply(in UpdateSalaryGradeInput) {
	if in.GradeName != nil {
		g.GradeName = *in.GradeName
	}
	if in.BaseSalary != nil {
		g.BaseSalary = *in.BaseSalary
	}
	if in.Coefficient != nil {
		g.Coefficient = *in.Coefficient
	}
}
