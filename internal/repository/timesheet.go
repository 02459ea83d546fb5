package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hrms/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// TimesheetFilter narrows a timesheet listing. Zero values mean "no filter".
// Date and From/To are "YYYY-MM-DD" strings; Date wins when both are set.
type TimesheetFilter struct {
	EmployeeID int64
	Date       string
	From       string
	To         string
	Pagination
}

type TimesheetRepository interface {
	List(filter TimesheetFilter) ([]*models.Timesheet, error)
	GetByID(id int64) (*models.Timesheet, error)
	Create(in models.CreateTimesheetInput) (*models.Timesheet, error)
	Update(id int64, in models.UpdateTimesheetInput) (*models.Timesheet, error)
	Delete(id int64) error
}

type timesheetRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTimesheetRepository(db *sqlx.DB, logger *zap.Logger) TimesheetRepository {
	return &timesheetRepository{db: db, logger: logger}
}

const timesheetColumns = `
	t.id, t.employee_id, t.date, t.check_in, t.check_out, t.working_hours,
	e.code AS employee_code, e.full_name AS employee_name
`

const timesheetJoins = `
	FROM timesheets t
	LEFT JOIN employees e ON e.id = t.employee_id
`

func (r *timesheetRepository) List(filter TimesheetFilter) ([]*models.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + timesheetJoins + ` WHERE TRUE`
	var args []interface{}

	if filter.EmployeeID != 0 {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND t.employee_id = $%d", len(args))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND t.date = $%d", len(args))
	} else {
		if filter.From != "" {
			args = append(args, filter.From)
			query += fmt.Sprintf(" AND t.date >= $%d", len(args))
		}
		if filter.To != "" {
			args = append(args, filter.To)
			query += fmt.Sprintf(" AND t.date <= $%d", len(args))
		}
	}

	limit, offset := filter.LimitOffset(DefaultPageSize)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY t.date DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	timesheets := []*models.Timesheet{}
	if err := r.db.Select(&timesheets, query, args...); err != nil {
		r.logger.Error("Failed to list timesheets", zap.Error(err))
		return nil, err
	}

	return timesheets, nil
}

func (r *timesheetRepository) GetByID(id int64) (*models.Timesheet, error) {
	var ts models.Timesheet
	query := `SELECT ` + timesheetColumns + timesheetJoins + ` WHERE t.id = $1`

	err := r.db.Get(&ts, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to get timesheet by ID", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &ts, nil
}

func (r *timesheetRepository) Create(in models.CreateTimesheetInput) (*models.Timesheet, error) {
	var id int64
	query := `
		INSERT INTO timesheets (employee_id, date, check_in, check_out, working_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(query, in.EmployeeID, in.Date, in.CheckIn, in.CheckOut, in.WorkingHours).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create timesheet", zap.Error(err))
		return nil, err
	}

	return r.GetByID(id)
}

func (r *timesheetRepository) Update(id int64, in models.UpdateTimesheetInput) (*models.Timesheet, error) {
	ts, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	ts.Apply(in)

	query := `
		UPDATE timesheets
		SET check_in = $1, check_out = $2, working_hours = $3
		WHERE id = $4
	`
	result, err := r.db.Exec(query, ts.CheckIn, ts.CheckOut, ts.WorkingHours, id)
	if err != nil {
		r.logger.Error("Failed to update timesheet", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return ts, nil
}

func (r *timesheetRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM timesheets WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete timesheet", zap.Int64("id", id), zap.Error(err))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
