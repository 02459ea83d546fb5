package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hrms/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// SalaryGradeFilter narrows a salary grade listing. Zero values mean "no filter".
type SalaryGradeFilter struct {
	Search string // substring match on grade name
	Pagination
}

type SalaryGradeRepository interface {
	List(filter SalaryGradeFilter) ([]*models.SalaryGrade, error)
	GetByID(id int64) (*models.SalaryGrade, error)
	Create(in models.CreateSalaryGradeInput) (*models.SalaryGrade, error)
	Update(id int64, in models.UpdateSalaryGradeInput) (*models.SalaryGrade, error)
	SoftDelete(id int64) error
}

type salaryGradeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSalaryGradeRepository(db *sqlx.DB, logger *zap.Logger) SalaryGradeRepository {
	return &salaryGradeRepository{db: db, logger: logger}
}

const salaryGradeColumns = `id, grade_name, base_salary, coefficient, deleted, deleted_at, created_at, updated_at`

func (r *salaryGradeRepository) List(filter SalaryGradeFilter) ([]*models.SalaryGrade, error) {
	query := `SELECT ` + salaryGradeColumns + ` FROM salary_grades WHERE deleted = FALSE`
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND grade_name ILIKE $%d", len(args))
	}

	limit, offset := filter.LimitOffset(DefaultPageSize)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	grades := []*models.SalaryGrade{}
	if err := r.db.Select(&grades, query, args...); err != nil {
		r.logger.Error("Failed to list salary grades", zap.Error(err))
		return nil, err
	}

	return grades, nil
}

func (r *salaryGradeRepository) GetByID(id int64) (*models.SalaryGrade, error) {
	var grade models.SalaryGrade
	query := `SELECT ` + salaryGradeColumns + ` FROM salary_grades WHERE id = $1 AND deleted = FALSE`

	err := r.db.Get(&grade, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to get salary grade by ID", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &grade, nil
}

func (r *salaryGradeRepository) Create(in models.CreateSalaryGradeInput) (*models.SalaryGrade, error) {
	taken, err := r.nameTaken(in.GradeName, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	baseSalary := "0"
	if in.BaseSalary != nil && *in.BaseSalary != "" {
		baseSalary = *in.BaseSalary
	}
	coefficient := "1"
	if in.Coefficient != nil && *in.Coefficient != "" {
		coefficient = *in.Coefficient
	}

	var grade models.SalaryGrade
	query := `
		INSERT INTO salary_grades (grade_name, base_salary, coefficient, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + salaryGradeColumns
	if err := r.db.QueryRowx(query, in.GradeName, baseSalary, coefficient).StructScan(&grade); err != nil {
		r.logger.Error("Failed to create salary grade", zap.Error(err))
		return nil, err
	}

	return &grade, nil
}

func (r *salaryGradeRepository) Update(id int64, in models.UpdateSalaryGradeInput) (*models.SalaryGrade, error) {
	grade, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.GradeName != nil {
		taken, err := r.nameTaken(*in.GradeName, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
	}

	grade.Apply(in)

	query := `
		UPDATE salary_grades
		SET grade_name = $1, base_salary = $2, coefficient = $3, updated_at = NOW()
		WHERE id = $4 AND deleted = FALSE
		RETURNING updated_at
	`
	err = r.db.QueryRow(query, grade.GradeName, grade.BaseSalary, grade.Coefficient, id).Scan(&grade.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to update salary grade", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return grade, nil
}

func (r *salaryGradeRepository) SoftDelete(id int64) error {
	query := `
		UPDATE salary_grades
		SET deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE
	`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Failed to soft delete salary grade", zap.Int64("id", id), zap.Error(err))
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

func (r *salaryGradeRepository) nameTaken(name string, excludeID int64) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM salary_grades WHERE grade_name = $1 AND deleted = FALSE AND id <> $2)`
	if err := r.db.Get(&taken, query, name, excludeID); err != nil {
		r.logger.Error("Failed to check salary grade name", zap.Error(err))
		return false, err
	}
	return taken, nil
}
