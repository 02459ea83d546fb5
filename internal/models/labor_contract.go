package models

import "time"

// LaborContract rows are hard-deleted; there is no soft-delete flag.
type LaborContract struct {
	ID           int64     `db:"id" json:"id"`
	EmployeeID   int64     `db:"employee_id" json:"employee_id"`
	ContractType string    `db:"contract_type" json:"contract_type"`
	Salary       string    `db:"salary" json:"salary"`
	StartDate    Date      `db:"start_date" json:"start_date"`
	EndDate      *Date     `db:"end_date" json:"end_date,omitempty"`
	FileURL      *string   `db:"file_url" json:"file_url,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateContractInput struct {
	EmployeeID   int64   `json:"employee_id" binding:"required"`
	ContractType string  `json:"contract_type" binding:"required"`
	Salary       *string `json:"salary"`
	StartDate    Date    `json:"start_date" binding:"required"`
	EndDate      *Date   `json:"end_date"`
	FileURL      *string `json:"file_url"`
}

type UpdateContractInput struct {
	ContractType *string `json:"contract_type"`
	Salary       *string `json:"salary"`
	StartDate    *Date   `json:"start_date"`
	EndDate      *Date   `json:"end_date"`
	FileURL      *string `json:"file_url"`
}

func (c *LaborContract) Apply(in UpdateContractInput) {
	if in.ContractType != nil {
		c.ContractType = *in.ContractType
	}
	if in.Salary != nil {
		c.Salary = *in.Salary
	}
	if in.StartDate != nil {
		c.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		c.EndDate = in.EndDate
	}
	if in.FileURL != nil {
		c.FileURL = in.FileURL
	}
}
