package handler

import (
	"bytes"
	"fmt"
	"strconv"

	"hrms/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// exportMaxRows caps the number of rows fetched for an Excel export.
const exportMaxRows = 10000

// PayrollExportHeader lists the columns of the payroll export sheet.
var PayrollExportHeader = []string{
	"Employee Code",
	"Employee Name",
	"Year",
	"Month",
	"Base Salary",
	"Allowance",
	"Bonus",
	"Penalty",
	"Total Salary",
}

// TimesheetExportHeader lists the columns of the timesheet export sheet.
var TimesheetExportHeader = []string{
	"Employee Code",
	"Employee Name",
	"Date",
	"Check In",
	"Check Out",
	"Working Hours",
}

// GeneratePayrollExport renders payroll rows into an xlsx workbook.
func GeneratePayrollExport(payrolls []*models.Payroll) ([]byte, error) {
	rows := make([][]interface{}, 0, len(payrolls))
	for _, p := range payrolls {
		rows = append(rows, []interface{}{
			strOrEmpty(p.EmployeeCode),
			strOrEmpty(p.EmployeeName),
			p.Year,
			p.Month,
			p.BaseSalary,
			p.Allowance,
			p.Bonus,
			p.Penalty,
			p.TotalSalary,
		})
	}
	return generateExcel("Payrolls", PayrollExportHeader, rows)
}

// GenerateTimesheetExport renders timesheet rows into an xlsx workbook.
func GenerateTimesheetExport(timesheets []*models.Timesheet) ([]byte, error) {
	rows := make([][]interface{}, 0, len(timesheets))
	for _, t := range timesheets {
		checkIn := ""
		if t.CheckIn != nil {
			checkIn = t.CheckIn.String()
		}
		checkOut := ""
		if t.CheckOut != nil {
			checkOut = t.CheckOut.String()
		}
		rows = append(rows, []interface{}{
			strOrEmpty(t.EmployeeCode),
			strOrEmpty(t.EmployeeName),
			t.Date.String(),
			checkIn,
			checkOut,
			strOrEmpty(t.WorkingHours),
		})
	}
	return generateExcel("Timesheets", TimesheetExportHeader, rows)
}

// generateExcel builds a single-sheet workbook with a styled header row.
func generateExcel(sheetName string, headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open; Close only on the error paths.

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writeXLSX sends workbook bytes as a download attachment.
func writeXLSX(c *gin.Context, filename string, content []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(content)))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
