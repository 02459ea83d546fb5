package repository

import (
	"database/sql"
	"testing"
	"time"

	"hrms/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupMockDepartmentDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, DepartmentRepository) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewDepartmentRepository(db, zap.NewNop())

	return db, mock, repo
}

func departmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "phone", "manager_id", "manager_name",
		"deleted", "deleted_at", "created_at", "updated_at",
	})
}

func TestDepartmentList_DefaultPagination(t *testing.T) {
	db, mock, repo := setupMockDepartmentDB(t)
	defer db.Close()

	now := time.Now()
	rows := departmentRows().
		AddRow(2, "Finance", nil, nil, nil, nil, false, nil, now, now).
		AddRow(1, "Engineering", "Builds things", "555-0100", 4, "Dana Moss", false, nil, now, now)

	mock.ExpectQuery(`SELECT`).
		WithArgs(50, 0).
		WillReturnRows(rows)

	departments, err := repo.List(DepartmentFilter{})

	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, int64(2), departments[0].ID)
	assert.Equal(t, "Finance", departments[0].Name)
	assert.Nil(t, departments[0].ManagerName)
	require.NotNil(t, departments[1].ManagerName)
	assert.Equal(t, "Dana Moss", *departments[1].ManagerName)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentList_SearchAndPage(t *testing.T) {
	db, mock, repo := setupMockDepartmentDB(t)
	defer db.Close()

	now := time.Now()
	rows := departmentRows().
		AddRow(7, "Financial Control", nil, nil, nil, nil, false, nil, now, now)

	mock.ExpectQuery(`SELECT`).
		WithArgs("%fin%", 10, 10).
		WillReturnRows(rows)

	departments, err := repo.List(DepartmentFilter{
		Search:     "fin",
		Pagination: Pagination{Page: 2, PageSize: 10},
	})

	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, "Financial Control", departments[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentGetByID_NotFound(t *testing.T) {
	db, mock, repo := setupMockDepartmentDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	dept, err := repo.GetByID(99)

	assert.Nil(t, dept)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentCreate_Success(t *testing.T) {
	db, mock, repo := setupMockDepartmentDB(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("Engineering", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectQuery(`INSERT INTO departments`).
		WithArgs("Engineering", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(5)).
		WillReturnRows(departmentRows().
			AddRow(5, "Engineering", nil, nil, nil, nil, false, nil, now, now))

	dept, err := repo.Create(models.CreateDepartmentInput{Name: "Engineering"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), dept.ID)
	assert.Equal(t, "Engineering", dept.Name)
	assert.False(t, dept.Deleted)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentCreate_NameConflict(t *testing.T) {
	db, mock, repo := setupMockDepartmentDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("Engineering", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	dept, err := repo.Create(models.CreateDepartmentInput{Name: "Engineering"})

	assert.Nil(t, dept)
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentUpdate_PartialKeepsOtherFields(t *testing.T) {
	db, mock, repo := setupMockDepartmentDB(t)
	defer db.Close()

	now := time.Now()
	phone := "555-0100"

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(3)).
		WillReturnRows(departmentRows().
			AddRow(3, "Engineering", "Builds things", phone, nil, nil, false, nil, now, now))

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("Platform", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectQuery(`UPDATE departments`).
		WithArgs("Platform", "Builds things", phone, nil, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	name := "Platform"
	dept, err := repo.Update(3, models.UpdateDepartmentInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Platform", dept.Name)
	require.NotNil(t, dept.Phone)
	assert.Equal(t, phone, *dept.Phone)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentSoftDelete_Success(t *testing.T) {
	db, mock, repo := setupMockDepartmentDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE departments`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SoftDelete(3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentSoftDelete_AlreadyDeleted(t *testing.T) {
	db, mock, repo := setupMockDepartmentDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE departments`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(3)

	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
