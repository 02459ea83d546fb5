package models

import "time"

// Payroll rows are hard-deleted; there is no soft-delete flag.
type Payroll struct {
	ID          int64     `db:"id" json:"id"`
	EmployeeID  int64     `db:"employee_id" json:"employee_id"`
	Month       int       `db:"month" json:"month"`
	Year        int       `db:"year" json:"year"`
	BaseSalary  string    `db:"base_salary" json:"base_salary"`
	Allowance   string    `db:"allowance" json:"allowance"`
	Bonus       string    `db:"bonus" json:"bonus"`
	Penalty     string    `db:"penalty" json:"penalty"`
	TotalSalary string    `db:"total_salary" json:"total_salary"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	// Joined reference data for responses and exports
	EmployeeCode *string `db:"employee_code" json:"employee_code,omitempty"`
	EmployeeName *string `db:"employee_name" json:"employee_name,omitempty"`
}

type CreatePayrollInput struct {
	EmployeeID  int64   `json:"employee_id" binding:"required"`
	Month       int     `json:"month" binding:"required,min=1,max=12"`
	Year        int     `json:"year" binding:"required,min=2000"`
	BaseSalary  *string `json:"base_salary"`
	Allowance   *string `json:"allowance"`
	Bonus       *string `json:"bonus"`
	Penalty     *string `json:"penalty"`
	TotalSalary *string `json:"total_salary"`
}

type UpdatePayrollInput struct {
	BaseSalary  *string `json:"base_salary"`
	Allowance   *string `json:"allowance"`
	Bonus       *string `json:"bonus"`
	Penalty     *string `json:"penalty"`
	TotalSalary *string `json:"total_salary"`
}

func (p *Payroll) Apply(in UpdatePayrollInput) {
	if in.BaseSalary != nil {
		p.BaseSalary = *in.BaseSalary
	}
	if in.Allowance != nil {
		p.Allowance = *in.Allowance
	}
	if in.Bonus != nil {
		p.Bonus = *in.Bonus
	}
	if in.Penalty != nil {
		p.Penalty = *in.Penalty
	}
	if in.TotalSalary != nil {
		p.TotalSalary = *in.TotalSalary
	}
}
