package handler

import (
	"bytes"
	"testing"
	"time"

	"hrms/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string { return &s }

func readSheet(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestGeneratePayrollExport(t *testing.T) {
	payrolls := []*models.Payroll{
		{
			EmployeeID: 4, Month: 3, Year: 2026,
			BaseSalary: "1500.00", Allowance: "100.00", Bonus: "0", Penalty: "0", TotalSalary: "1600.00",
			EmployeeCode: strPtr("EMP-004"), EmployeeName: strPtr("Dana Moss"),
		},
		{
			EmployeeID: 5, Month: 2, Year: 2026,
			BaseSalary: "1200.00", Allowance: "0", Bonus: "50.00", Penalty: "0", TotalSalary: "1250.00",
			EmployeeCode: strPtr("EMP-005"), EmployeeName: strPtr("Kim Tran"),
		},
	}

	data, err := GeneratePayrollExport(payrolls)
	require.NoError(t, err)

	rows := readSheet(t, data, "Payrolls")
	require.Len(t, rows, 3)
	assert.Equal(t, PayrollExportHeader, rows[0])
	assert.Equal(t, "EMP-004", rows[1][0])
	assert.Equal(t, "Dana Moss", rows[1][1])
	assert.Equal(t, "1600.00", rows[1][8])
	assert.Equal(t, "EMP-005", rows[2][0])
}

func TestGenerateTimesheetExport(t *testing.T) {
	var checkIn models.TimeOfDay
	require.NoError(t, checkIn.Scan("08:30:00"))

	timesheets := []*models.Timesheet{
		{
			EmployeeID:   4,
			Date:         models.NewDate(2026, time.March, 9),
			CheckIn:      &checkIn,
			WorkingHours: strPtr("8.0"),
			EmployeeCode: strPtr("EMP-004"),
			EmployeeName: strPtr("Dana Moss"),
		},
	}

	data, err := GenerateTimesheetExport(timesheets)
	require.NoError(t, err)

	rows := readSheet(t, data, "Timesheets")
	require.Len(t, rows, 2)
	assert.Equal(t, TimesheetExportHeader, rows[0])
	assert.Equal(t, "2026-03-09", rows[1][2])
	assert.Equal(t, "08:30:00", rows[1][3])
	// Missing check-out renders as an empty cell.
	assert.Equal(t, "", rows[1][4])
}

func TestGenerateExportEmpty(t *testing.T) {
	data, err := GeneratePayrollExport(nil)
	require.NoError(t, err)

	rows := readSheet(t, data, "Payrolls")
	require.Len(t, rows, 1)
	assert.Equal(t, PayrollExportHeader, rows[0])
}
