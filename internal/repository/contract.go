package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hrms/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ContractFilter narrows a contract listing. Zero values mean "no filter".
type ContractFilter struct {
	EmployeeID int64
	Pagination
}

type ContractRepository interface {
	List(filter ContractFilter) ([]*models.LaborContract, error)
	GetByID(id int64) (*models.LaborContract, error)
	Create(in models.CreateContractInput) (*models.LaborContract, error)
	Update(id int64, in models.UpdateContractInput) (*models.LaborContract, error)
	Delete(id int64) error
}

type contractRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewContractRepository(db *sqlx.DB, logger *zap.Logger) ContractRepository {
	return &contractRepository{db: db, logger: logger}
}

const contractColumns = `id, employee_id, contract_type, salary, start_date, end_date, file_url, created_at, updated_at`

func (r *contractRepository) List(filter ContractFilter) ([]*models.LaborContract, error) {
	query := `SELECT ` + contractColumns + ` FROM labor_contracts WHERE TRUE`
	var args []interface{}

	if filter.EmployeeID != 0 {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}

	limit, offset := filter.LimitOffset(DefaultPageSize)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	contracts := []*models.LaborContract{}
	if err := r.db.Select(&contracts, query, args...); err != nil {
		r.logger.Error("Failed to list contracts", zap.Error(err))
		return nil, err
	}

	return contracts, nil
}

func (r *contractRepository) GetByID(id int64) (*models.LaborContract, error) {
	var contract models.LaborContract
	query := `SELECT ` + contractColumns + ` FROM labor_contracts WHERE id = $1`

	err := r.db.Get(&contract, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to get contract by ID", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &contract, nil
}

func (r *contractRepository) Create(in models.CreateContractInput) (*models.LaborContract, error) {
	salary := "0"
	if in.Salary != nil && *in.Salary != "" {
		salary = *in.Salary
	}

	var contract models.LaborContract
	query := `
		INSERT INTO labor_contracts (employee_id, contract_type, salary, start_date, end_date, file_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + contractColumns
	err := r.db.QueryRowx(query, in.EmployeeID, in.ContractType, salary, in.StartDate, in.EndDate, in.FileURL).StructScan(&contract)
	if err != nil {
		r.logger.Error("Failed to create contract", zap.Error(err))
		return nil, err
	}

	return &contract, nil
}

func (r *contractRepository) Update(id int64, in models.UpdateContractInput) (*models.LaborContract, error) {
	contract, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	contract.Apply(in)

	query := `
		UPDATE labor_contracts
		SET contract_type = $1, salary = $2, start_date = $3, end_date = $4, file_url = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`
	err = r.db.QueryRow(query, contract.ContractType, contract.Salary, contract.StartDate, contract.EndDate, contract.FileURL, id).Scan(&contract.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to update contract", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return contract, nil
}

func (r *contractRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM labor_contracts WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete contract", zap.Int64("id", id), zap.Error(err))
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
