package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hrms/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// PayrollFilter narrows a payroll listing. Zero values mean "no filter".
type PayrollFilter struct {
	EmployeeID int64
	Month      int
	Year       int
	Pagination
}

type PayrollRepository interface {
	List(filter PayrollFilter) ([]*models.Payroll, error)
	GetByID(id int64) (*models.Payroll, error)
	Create(in models.CreatePayrollInput) (*models.Payroll, error)
	Update(id int64, in models.UpdatePayrollInput) (*models.Payroll, error)
	Delete(id int64) error
}

type payrollRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPayrollRepository(db *sqlx.DB, logger *zap.Logger) PayrollRepository {
	return &payrollRepository{db: db, logger: logger}
}

const payrollColumns = `
	pr.id, pr.employee_id, pr.month, pr.year, pr.base_salary, pr.allowance,
	pr.bonus, pr.penalty, pr.total_salary, pr.created_at,
	e.code AS employee_code, e.full_name AS employee_name
`

const payrollJoins = `
	FROM payrolls pr
	LEFT JOIN employees e ON e.id = pr.employee_id
`

func (r *payrollRepository) List(filter PayrollFilter) ([]*models.Payroll, error) {
	query := `SELECT ` + payrollColumns + payrollJoins + ` WHERE TRUE`
	var args []interface{}

	if filter.EmployeeID != 0 {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND pr.employee_id = $%d", len(args))
	}
	if filter.Month != 0 {
		args = append(args, filter.Month)
		query += fmt.Sprintf(" AND pr.month = $%d", len(args))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND pr.year = $%d", len(args))
	}

	limit, offset := filter.LimitOffset(DefaultPageSize)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY pr.year DESC, pr.month DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	payrolls := []*models.Payroll{}
	if err := r.db.Select(&payrolls, query, args...); err != nil {
		r.logger.Error("Failed to list payrolls", zap.Error(err))
		return nil, err
	}

	return payrolls, nil
}

func (r *payrollRepository) GetByID(id int64) (*models.Payroll, error) {
	var payroll models.Payroll
	query := `SELECT ` + payrollColumns + payrollJoins + ` WHERE pr.id = $1`

	err := r.db.Get(&payroll, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to get payroll by ID", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &payroll, nil
}

func (r *payrollRepository) Create(in models.CreatePayrollInput) (*models.Payroll, error) {
	var id int64
	query := `
		INSERT INTO payrolls (employee_id, month, year, base_salary, allowance, bonus, penalty, total_salary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id
	`
	err := r.db.QueryRow(
		query,
		in.EmployeeID, in.Month, in.Year,
		amountOrZero(in.BaseSalary), amountOrZero(in.Allowance),
		amountOrZero(in.Bonus), amountOrZero(in.Penalty), amountOrZero(in.TotalSalary),
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create payroll", zap.Error(err))
		return nil, err
	}

	return r.GetByID(id)
}

func (r *payrollRepository) Update(id int64, in models.UpdatePayrollInput) (*models.Payroll, error) {
	payroll, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	payroll.Apply(in)

	query := `
		UPDATE payrolls
		SET base_salary = $1, allowance = $2, bonus = $3, penalty = $4, total_salary = $5
		WHERE id = $6
	`
	result, err := r.db.Exec(query, payroll.BaseSalary, payroll.Allowance, payroll.Bonus, payroll.Penalty, payroll.TotalSalary, id)
	if err != nil {
		r.logger.Error("Failed to update payroll", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return payroll, nil
}

func (r *payrollRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete payroll", zap.Int64("id", id), zap.Error(err))
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

func amountOrZero(v *string) string {
	if v == nil || *v == "" {
		return "0"
	}
	return *v
}
