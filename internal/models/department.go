package models

import "time"

type Department struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	Phone       *string    `db:"phone" json:"phone,omitempty"`
	ManagerID   *int64     `db:"manager_id" json:"manager_id,omitempty"`
	ManagerName *string    `db:"manager_name" json:"manager_name,omitempty"` // Joined from employees
	Deleted     bool       `db:"deleted" json:"deleted"`
	DeletedAt   *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// CreateDepartmentInput represents input for creating a department
type CreateDepartmentInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	ManagerID   *int64  `json:"manager_id"`
}

// UpdateDepartmentInput carries a partial update; nil fields are left untouched.
type UpdateDepartmentInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	ManagerID   *int64  `json:"manager_id"`
}

// Apply copies the fields present in the input onto the department.
func (d *Department) Apply(in UpdateDepartmentInput) {
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Description != nil {
		d.Description = in.Description
	}
	if in.Phone != nil {
		d.Phone = in.Phone
	}
	if in.ManagerID != nil {
		d.ManagerID = in.ManagerID
	}
}
