package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hrms/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// PositionFilter narrows a position listing. Zero values mean "no filter".
type PositionFilter struct {
	Search string // substring match on name
	Pagination
}

type PositionRepository interface {
	List(filter PositionFilter) ([]*models.Position, error)
	GetByID(id int64) (*models.Position, error)
	Create(in models.CreatePositionInput) (*models.Position, error)
	Update(id int64, in models.UpdatePositionInput) (*models.Position, error)
	SoftDelete(id int64) error
}

type positionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPositionRepository(db *sqlx.DB, logger *zap.Logger) PositionRepository {
	return &positionRepository{db: db, logger: logger}
}

const positionColumns = `id, name, description, level, deleted, deleted_at, created_at, updated_at`

func (r *positionRepository) List(filter PositionFilter) ([]*models.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE deleted = FALSE`
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}

	limit, offset := filter.LimitOffset(DefaultPageSize)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	positions := []*models.Position{}
	if err := r.db.Select(&positions, query, args...); err != nil {
		r.logger.Error("Failed to list positions", zap.Error(err))
		return nil, err
	}

	return positions, nil
}

func (r *positionRepository) GetByID(id int64) (*models.Position, error) {
	var pos models.Position
	query := `SELECT ` + positionColumns + ` FROM positions WHERE id = $1 AND deleted = FALSE`

	err := r.db.Get(&pos, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to get position by ID", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &pos, nil
}

func (r *positionRepository) Create(in models.CreatePositionInput) (*models.Position, error) {
	taken, err := r.nameTaken(in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	level := 1
	if in.Level != nil {
		level = *in.Level
	}

	var pos models.Position
	query := `
		INSERT INTO positions (name, description, level, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + positionColumns
	if err := r.db.QueryRowx(query, in.Name, in.Description, level).StructScan(&pos); err != nil {
		r.logger.Error("Failed to create position", zap.Error(err))
		return nil, err
	}

	return &pos, nil
}

func (r *positionRepository) Update(id int64, in models.UpdatePositionInput) (*models.Position, error) {
	pos, err := r.GetByID(id)
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

	pos.Apply(in)

	query := `
		UPDATE positions
		SET name = $1, description = $2, level = $3, updated_at = NOW()
		WHERE id = $4 AND deleted = FALSE
		RETURNING updated_at
	`
	err = r.db.QueryRow(query, pos.Name, pos.Description, pos.Level, id).Scan(&pos.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to update position", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return pos, nil
}

func (r *positionRepository) SoftDelete(id int64) error {
	query := `
		UPDATE positions
		SET deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE
	`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Failed to soft delete position", zap.Int64("id", id), zap.Error(err))
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

func (r *positionRepository) nameTaken(name string, excludeID int64) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM positions WHERE name = $1 AND deleted = FALSE AND id <> $2)`
	if err := r.db.Get(&taken, query, name, excludeID); err != nil {
		r.logger.Error("Failed to check position name", zap.Error(err))
		return false, err
	}
	return taken, nil
}
