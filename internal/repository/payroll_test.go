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

func setupMockPayrollDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, PayrollRepository) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewPayrollRepository(db, zap.NewNop())

	return db, mock, repo
}

func payrollRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "employee_id", "month", "year", "base_salary", "allowance",
		"bonus", "penalty", "total_salary", "created_at",
		"employee_code", "employee_name",
	})
}

func TestPayrollList_Filters(t *testing.T) {
	db, mock, repo := setupMockPayrollDB(t)
	defer db.Close()

	now := time.Now()
	rows := payrollRows().
		AddRow(12, 4, 3, 2026, "1500.00", "100.00", "0", "0", "1600.00", now, "EMP-004", "Dana Moss")

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(4), 3, 2026, 50, 0).
		WillReturnRows(rows)

	payrolls, err := repo.List(PayrollFilter{EmployeeID: 4, Month: 3, Year: 2026})

	require.NoError(t, err)
	require.Len(t, payrolls, 1)
	assert.Equal(t, int64(12), payrolls[0].ID)
	assert.Equal(t, "1600.00", payrolls[0].TotalSalary)
	require.NotNil(t, payrolls[0].EmployeeCode)
	assert.Equal(t, "EMP-004", *payrolls[0].EmployeeCode)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollCreate_MissingAmountsDefaultToZero(t *testing.T) {
	db, mock, repo := setupMockPayrollDB(t)
	defer db.Close()

	now := time.Now()
	base := "1500.00"

	mock.ExpectQuery(`INSERT INTO payrolls`).
		WithArgs(int64(4), 3, 2026, "1500.00", "0", "0", "0", "0").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(12)).
		WillReturnRows(payrollRows().
			AddRow(12, 4, 3, 2026, "1500.00", "0", "0", "0", "0", now, "EMP-004", "Dana Moss"))

	payroll, err := repo.Create(models.CreatePayrollInput{
		EmployeeID: 4,
		Month:      3,
		Year:       2026,
		BaseSalary: &base,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), payroll.ID)
	assert.Equal(t, "0", payroll.Allowance)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollUpdate_PartialAmounts(t *testing.T) {
	db, mock, repo := setupMockPayrollDB(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(12)).
		WillReturnRows(payrollRows().
			AddRow(12, 4, 3, 2026, "1500.00", "100.00", "0", "0", "1600.00", now, "EMP-004", "Dana Moss"))

	mock.ExpectExec(`UPDATE payrolls`).
		WithArgs("1500.00", "100.00", "250.00", "0", "1850.00", int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	bonus := "250.00"
	total := "1850.00"
	payroll, err := repo.Update(12, models.UpdatePayrollInput{Bonus: &bonus, TotalSalary: &total})

	require.NoError(t, err)
	assert.Equal(t, "250.00", payroll.Bonus)
	assert.Equal(t, "1500.00", payroll.BaseSalary)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollUpdate_NotFound(t *testing.T) {
	db, mock, repo := setupMockPayrollDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	payroll, err := repo.Update(99, models.UpdatePayrollInput{})

	assert.Nil(t, payroll)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollDelete_Success(t *testing.T) {
	db, mock, repo := setupMockPayrollDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM payrolls`).
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(12))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollDelete_NotFound(t *testing.T) {
	db, mock, repo := setupMockPayrollDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM payrolls`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(99)

	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
