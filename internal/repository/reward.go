package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hrms/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// RewardFilter narrows a reward/discipline listing. Zero values mean "no filter".
type RewardFilter struct {
	EmployeeID int64
	Type       string // reward or discipline
	Pagination
}

type RewardRepository interface {
	List(filter RewardFilter) ([]*models.RewardDiscipline, error)
	GetByID(id int64) (*models.RewardDiscipline, error)
	Create(in models.CreateRewardInput) (*models.RewardDiscipline, error)
	Update(id int64, in models.UpdateRewardInput) (*models.RewardDiscipline, error)
	Delete(id int64) error
}

type rewardRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRewardRepository(db *sqlx.DB, logger *zap.Logger) RewardRepository {
	return &rewardRepository{db: db, logger: logger}
}

const rewardColumns = `id, employee_id, type, title, amount, date, note`

func (r *rewardRepository) List(filter RewardFilter) ([]*models.RewardDiscipline, error) {
	query := `SELECT ` + rewardColumns + ` FROM reward_discipline WHERE TRUE`
	var args []interface{}

	if filter.EmployeeID != 0 {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}

	limit, offset := filter.LimitOffset(DefaultPageSize)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rewards := []*models.RewardDiscipline{}
	if err := r.db.Select(&rewards, query, args...); err != nil {
		r.logger.Error("Failed to list rewards", zap.Error(err))
		return nil, err
	}

	return rewards, nil
}

func (r *rewardRepository) GetByID(id int64) (*models.RewardDiscipline, error) {
	var reward models.RewardDiscipline
	query := `SELECT ` + rewardColumns + ` FROM reward_discipline WHERE id = $1`

	err := r.db.Get(&reward, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to get reward by ID", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &reward, nil
}

func (r *rewardRepository) Create(in models.CreateRewardInput) (*models.RewardDiscipline, error) {
	var reward models.RewardDiscipline
	query := `
		INSERT INTO reward_discipline (employee_id, type, title, amount, date, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + rewardColumns
	err := r.db.QueryRowx(query, in.EmployeeID, in.Type, in.Title, amountOrZero(in.Amount), in.Date, in.Note).StructScan(&reward)
	if err != nil {
		r.logger.Error("Failed to create reward", zap.Error(err))
		return nil, err
	}

	return &reward, nil
}

func (r *rewardRepository) Update(id int64, in models.UpdateRewardInput) (*models.RewardDiscipline, error) {
	reward, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	reward.Apply(in)

	query := `
		UPDATE reward_discipline
		SET type = $1, title = $2, amount = $3, date = $4, note = $5
		WHERE id = $6
	`
	result, err := r.db.Exec(query, reward.Type, reward.Title, reward.Amount, reward.Date, reward.Note, id)
	if err != nil {
		r.logger.Error("Failed to update reward", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return reward, nil
}

func (r *rewardRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM reward_discipline WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete reward", zap.Int64("id", id), zap.Error(err))
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
