package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hrms/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// UserFilter narrows a user listing. Zero values mean "no filter".
type UserFilter struct {
	Search string // substring match on full name
	Pagination
}

type UserRepository interface {
	List(filter UserFilter) ([]*models.User, error)
	GetByID(id int64) (*models.User, error)
	// GetByEmail looks up a non-deleted user by exact email for login.
	GetByEmail(email string) (*models.User, error)
	Create(in models.CreateUserInput, passwordHash string) (*models.User, error)
	Update(id int64, in models.UpdateUserInput) (*models.User, error)
	UpdatePasswordHash(id int64, passwordHash string) error
	SoftDelete(id int64) error
	// CountAdmins counts non-deleted admin users, used by the startup seeder.
	CountAdmins() (int, error)
}

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *sqlx.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

const userColumns = `id, full_name, email, password_hash, role, status, deleted, deleted_at, created_at, updated_at`

func (r *userRepository) List(filter UserFilter) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted = FALSE`
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND full_name ILIKE $%d", len(args))
	}

	limit, offset := filter.LimitOffset(DefaultPageSize)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	users := []*models.User{}
	if err := r.db.Select(&users, query, args...); err != nil {
		r.logger.Error("Failed to list users", zap.Error(err))
		return nil, err
	}

	return users, nil
}

func (r *userRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted = FALSE`

	err := r.db.Get(&user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to get user by ID", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted = FALSE`

	err := r.db.Get(&user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) Create(in models.CreateUserInput, passwordHash string) (*models.User, error) {
	taken, err := r.emailTaken(in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	role := models.RoleViewer
	if in.Role != nil && *in.Role != "" {
		role = *in.Role
	}
	status := models.UserStatusActive
	if in.Status != nil && *in.Status != "" {
		status = *in.Status
	}

	var user models.User
	query := `
		INSERT INTO users (full_name, email, password_hash, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns
	if err := r.db.QueryRowx(query, in.FullName, in.Email, passwordHash, role, status).StructScan(&user); err != nil {
		r.logger.Error("Failed to create user", zap.Error(err))
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) Update(id int64, in models.UpdateUserInput) (*models.User, error) {
	user, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		taken, err := r.emailTaken(*in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
	}

	user.Apply(in)

	query := `
		UPDATE users
		SET full_name = $1, email = $2, role = $3, status = $4, updated_at = NOW()
		WHERE id = $5 AND deleted = FALSE
		RETURNING updated_at
	`
	err = r.db.QueryRow(query, user.FullName, user.Email, user.Role, user.Status, id).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to update user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdatePasswordHash(id int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2 AND deleted = FALSE`
	result, err := r.db.Exec(query, passwordHash, id)
	if err != nil {
		r.logger.Error("Failed to update user password", zap.Int64("id", id), zap.Error(err))
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

func (r *userRepository) SoftDelete(id int64) error {
	query := `
		UPDATE users
		SET deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE
	`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Failed to soft delete user", zap.Int64("id", id), zap.Error(err))
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

func (r *userRepository) CountAdmins() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE role = $1 AND deleted = FALSE`
	if err := r.db.Get(&count, query, models.RoleAdmin); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) emailTaken(email string, excludeID int64) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND deleted = FALSE AND id <> $2)`
	if err := r.db.Get(&taken, query, email, excludeID); err != nil {
		r.logger.Error("Failed to check user email", zap.Error(err))
		return false, err
	}
	return taken, nil
}
