package models

// Timesheet rows are hard-deleted; there is no soft-delete flag.
type Timesheet struct {
	ID           int64      `db:"id" json:"id"`
	EmployeeID   int64      `db:"employee_id" json:"employee_id"`
	Date         Date       `db:"date" json:"date"`
	CheckIn      *TimeOfDay `db:"check_in" json:"check_in,omitempty"`
	CheckOut     *TimeOfDay `db:"check_out" json:"check_out,omitempty"`
	WorkingHours *string    `db:"working_hours" json:"working_hours,omitempty"`

	// Joined reference data for exports
	EmployeeCode *string `db:"employee_code" json:"employee_code,omitempty"`
	EmployeeName *string `db:"employee_name" json:"employee_name,omitempty"`
}

type CreateTimesheetInput struct {
	EmployeeID   int64      `json:"employee_id" binding:"required"`
	Date         Date       `json:"date" binding:"required"`
	CheckIn      *TimeOfDay `json:"check_in"`
	CheckOut     *TimeOfDay `json:"check_out"`
	WorkingHours *string    `json:"working_hours"`
}

type UpdateTimesheetInput struct {
	CheckIn      *TimeOfDay `json:"check_in"`
	CheckOut     *TimeOfDay `json:"check_out"`
	WorkingHours *string    `json:"working_hours"`
}

func (t *Timesheet) Apply(in UpdateTimesheetInput) {
	if in.CheckIn != nil {
		t.CheckIn = in.CheckIn
	}
	if in.CheckOut != nil {
		t.CheckOut = in.CheckOut
	}
	if in.WorkingHours != nil {
		t.WorkingHours = in.WorkingHours
	}
}
