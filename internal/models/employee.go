package models

import "time"

type Employee struct {
	ID            int64      `db:"id" json:"id"`
	Code          string     `db:"code" json:"code"`
	FullName      string     `db:"full_name" json:"full_name"`
	Gender        string     `db:"gender" json:"gender"` // male, female, other
	DOB           *Date      `db:"dob" json:"dob,omitempty"`
	Email         *string    `db:"email" json:"email,omitempty"`
	Phone         *string    `db:"phone" json:"phone,omitempty"`
	Address       *string    `db:"address" json:"address,omitempty"`
	Avatar        *string    `db:"avatar" json:"avatar,omitempty"`
	DepartmentID  *int64     `db:"department_id" json:"department_id,omitempty"`
	PositionID    *int64     `db:"position_id" json:"position_id,omitempty"`
	SalaryGradeID *int64     `db:"salary_grade_id" json:"salary_grade_id,omitempty"`
	HireDate      *Date      `db:"hire_date" json:"hire_date,omitempty"`
	Status        string     `db:"status" json:"status"` // active, inactive, leave
	Deleted       bool       `db:"deleted" json:"deleted"`
	DeletedAt     *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`

	// Joined reference data for responses
	DepartmentName  *string `db:"department_name" json:"department_name,omitempty"`
	PositionName    *string `db:"position_name" json:"position_name,omitempty"`
	SalaryGradeName *string `db:"salary_grade_name" json:"salary_grade_name,omitempty"`
}

type CreateEmployeeInput struct {
	Code          string  `json:"code" binding:"required"`
	FullName      string  `json:"full_name" binding:"required"`
	Gender        string  `json:"gender" binding:"required,oneof=male female other"`
	DOB           *Date   `json:"dob"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Avatar        *string `json:"avatar"`
	DepartmentID  *int64  `json:"department_id"`
	PositionID    *int64  `json:"position_id"`
	SalaryGradeID *int64  `json:"salary_grade_id"`
	HireDate      *Date   `json:"hire_date"`
	Status        *string `json:"status" binding:"omitempty,oneof=active inactive leave"`
}

type UpdateEmployeeInput struct {
	Code          *string `json:"code"`
	FullName      *string `json:"full_name"`
	Gender        *string `json:"gender" binding:"omitempty,oneof=male female other"`
	DOB           *Date   `json:"dob"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Avatar        *string `json:"avatar"`
	DepartmentID  *int64  `json:"department_id"`
	PositionID    *int64  `json:"position_id"`
	SalaryGradeID *int64  `json:"salary_grade_id"`
	HireDate      *Date   `json:"hire_date"`
	Status        *string `json:"status" binding:"omitempty,oneof=active inactive leave"`
}

func (e *Employee) Apply(in UpdateEmployeeInput) {
	if in.Code != nil {
		e.Code = *in.Code
	}
	if in.FullName != nil {
		e.FullName = *in.FullName
	}
	if in.Gender != nil {
		e.Gender = *in.Gender
	}
	if in.DOB != nil {
		e.DOB = in.DOB
	}
	if in.Email != nil {
		e.Email = in.Email
	}
	if in.Phone != nil {
		e.Phone = in.Phone
	}
	if in.Address != nil {
		e.Address = in.Address
	}
	if in.Avatar != nil {
		e.Avatar = in.Avatar
	}
	if in.DepartmentID != nil {
		e.DepartmentID = in.DepartmentID
	}
	if in.PositionID != nil {
		e.PositionID = in.PositionID
	}
	if in.SalaryGradeID != nil {
		e.SalaryGradeID = in.SalaryGradeID
	}
	if in.HireDate != nil {
		e.HireDate = in.HireDate
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
}
