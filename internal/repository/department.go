package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hrms/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// DepartmentFilter narrows a department listing. Zero values mean "no filter".
type DepartmentFilter struct {
	Search string // substring match on name
	Pagination
}

// DepartmentRepository defines the interface for department operations
type DepartmentRepository interface {
	List(filter DepartmentFilter) ([]*models.Department, error)
	GetByID(id int64) (*models.Department, error)
	Create(in models.CreateDepartmentInput) (*models.Department, error)
	Update(id int64, in models.UpdateDepartmentInput) (*models.Department, error)
	SoftDelete(id int64) error
}

type departmentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *sqlx.DB, logger *zap.Logger) DepartmentRepository {
	return &departmentRepository{db: db, logger: logger}
}

const departmentColumns = `
	d.id, d.name, d.description, d.phone, d.manager_id,
	m.full_name AS manager_name,
	d.deleted, d.deleted_at, d.created_at, d.updated_at
`

func (r *departmentRepository) List(filter DepartmentFilter) ([]*models.Department, error) {
	query := `
		SELECT ` + departmentColumns + `
		FROM departments d
		LEFT JOIN employees m ON m.id = d.manager_id
		WHERE d.deleted = FALSE
	`
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND d.name ILIKE $%d", len(args))
	}

	limit, offset := filter.LimitOffset(DefaultPageSize)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY d.id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	departments := []*models.Department{}
	if err := r.db.Select(&departments, query, args...); err != nil {
		r.logger.Error("Failed to list departments", zap.Error(err))
		return nil, err
	}

	return departments, nil
}

func (r *departmentRepository) GetByID(id int64) (*models.Department, error) {
	var dept models.Department
	query := `
		SELECT ` + departmentColumns + `
		FROM departments d
		LEFT JOIN employees m ON m.id = d.manager_id
		WHERE d.id = $1 AND d.deleted = FALSE
	`

	err := r.db.Get(&dept, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to get department by ID", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &dept, nil
}

func (r *departmentRepository) Create(in models.CreateDepartmentInput) (*models.Department, error) {
	taken, err := r.nameTaken(in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	var id int64
	query := `
		INSERT INTO departments (name, description, phone, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	if err := r.db.QueryRow(query, in.Name, in.Description, in.Phone, in.ManagerID).Scan(&id); err != nil {
		r.logger.Error("Failed to create department", zap.Error(err))
		return nil, err
	}

	return r.GetByID(id)
}

func (r *departmentRepository) Update(id int64, in models.UpdateDepartmentInput) (*models.Department, error) {
	dept, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		taken, err := r.nameTaken(*in.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
	}

	dept.Apply(in)

	query := `
		UPDATE departments
		SET name = $1, description = $2, phone = $3, manager_id = $4, updated_at = NOW()
		WHERE id = $5 AND deleted = FALSE
		RETURNING updated_at
	`
	err = r.db.QueryRow(query, dept.Name, dept.Description, dept.Phone, dept.ManagerID, id).Scan(&dept.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to update department", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return dept, nil
}

func (r *departmentRepository) SoftDelete(id int64) error {
	query := `
		UPDATE departments
		SET deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE
	`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Failed to soft delete department", zap.Int64("id", id), zap.Error(err))
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

// nameTaken reports whether a non-deleted department other than excludeID
// already uses the name. The database's partial unique index remains the
// authoritative guard against concurrent writers.
func (r *departmentRepository) nameTaken(name string, excludeID int64) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM departments WHERE name = $1 AND deleted = FALSE AND id <> $2)`
	if err := r.db.Get(&taken, query, name, excludeID); err != nil {
		r.logger.Error("Failed to check department name", zap.Error(err))
		return false, err
	}
	return taken, nil
}
