package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hrms/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// DefaultEmployeePageSize keeps employee listings smaller than the generic
// default because rows carry joined reference data.
const DefaultEmployeePageSize = 20

// EmployeeFilter narrows an employee listing. Zero values mean "no filter".
type EmployeeFilter struct {
	Search       string // substring match on full name or code
	DepartmentID int64
	Status       string
	Pagination
}

type EmployeeRepository interface {
	List(filter EmployeeFilter) ([]*models.Employee, error)
	GetByID(id int64) (*models.Employee, error)
	Create(in models.CreateEmployeeInput) (*models.Employee, error)
	Update(id int64, in models.UpdateEmployeeInput) (*models.Employee, error)
	SoftDelete(id int64) error
}

type employeeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewEmployeeRepository(db *sqlx.DB, logger *zap.Logger) EmployeeRepository {
	return &employeeRepository{db: db, logger: logger}
}

const employeeColumns = `
	e.id, e.code, e.full_name, e.gender, e.dob, e.email, e.phone, e.address, e.avatar,
	e.department_id, e.position_id, e.salary_grade_id, e.hire_date, e.status,
	e.deleted, e.deleted_at, e.created_at, e.updated_at,
	d.name AS department_name, p.name AS position_name, g.grade_name AS salary_grade_name
`

const employeeJoins = `
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN positions p ON p.id = e.position_id
	LEFT JOIN salary_grades g ON g.id = e.salary_grade_id
`

func (r *employeeRepository) List(filter EmployeeFilter) ([]*models.Employee, error) {
	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.deleted = FALSE`
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (e.full_name ILIKE $%d OR e.code ILIKE $%d)", len(args), len(args))
	}
	if filter.DepartmentID != 0 {
		args = append(args, filter.DepartmentID)
		query += fmt.Sprintf(" AND e.department_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND e.status = $%d", len(args))
	}

	limit, offset := filter.LimitOffset(DefaultEmployeePageSize)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY e.id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	employees := []*models.Employee{}
	if err := r.db.Select(&employees, query, args...); err != nil {
		r.logger.Error("Failed to list employees", zap.Error(err))
		return nil, err
	}

	return employees, nil
}

func (r *employeeRepository) GetByID(id int64) (*models.Employee, error) {
	var emp models.Employee
	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.id = $1 AND e.deleted = FALSE`

	err := r.db.Get(&emp, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to get employee by ID", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &emp, nil
}

func (r *employeeRepository) Create(in models.CreateEmployeeInput) (*models.Employee, error) {
	taken, err := r.codeTaken(in.Code, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	status := "active"
	if in.Status != nil && *in.Status != "" {
		status = *in.Status
	}

	var id int64
	query := `
		INSERT INTO employees (
			code, full_name, gender, dob, email, phone, address, avatar,
			department_id, position_id, salary_grade_id, hire_date, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id
	`
	err = r.db.QueryRow(
		query,
		in.Code, in.FullName, in.Gender, in.DOB, in.Email, in.Phone, in.Address, in.Avatar,
		in.DepartmentID, in.PositionID, in.SalaryGradeID, in.HireDate, status,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create employee", zap.Error(err))
		return nil, err
	}

	return r.GetByID(id)
}

func (r *employeeRepository) Update(id int64, in models.UpdateEmployeeInput) (*models.Employee, error) {
	emp, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Code != nil {
		taken, err := r.codeTaken(*in.Code, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
	}

	emp.Apply(in)

	query := `
		UPDATE employees
		SET code = $1, full_name = $2, gender = $3, dob = $4, email = $5, phone = $6,
			address = $7, avatar = $8, department_id = $9, position_id = $10,
			salary_grade_id = $11, hire_date = $12, status = $13, updated_at = NOW()
		WHERE id = $14 AND deleted = FALSE
		RETURNING updated_at
	`
	err = r.db.QueryRow(
		query,
		emp.Code, emp.FullName, emp.Gender, emp.DOB, emp.Email, emp.Phone,
		emp.Address, emp.Avatar, emp.DepartmentID, emp.PositionID,
		emp.SalaryGradeID, emp.HireDate, emp.Status, id,
	).Scan(&emp.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to update employee", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return emp, nil
}

func (r *employeeRepository) SoftDelete(id int64) error {
	query := `
		UPDATE employees
		SET deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE
	`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Failed to soft delete employee", zap.Int64("id", id), zap.Error(err))
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

func (r *employeeRepository) codeTaken(code string, excludeID int64) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE code = $1 AND deleted = FALSE AND id <> $2)`
	if err := r.db.Get(&taken, query, code, excludeID); err != nil {
		r.logger.Error("Failed to check employee code", zap.Error(err))
		return false, err
	}
	return taken, nil
}
