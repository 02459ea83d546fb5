package handler

import (
	"fmt"
	"net/http"
	"time"

	"hrms/internal/models"
	"hrms/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PayrollHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Export(c *gin.Context)
}

type payrollHandler struct {
	repo repository.PayrollRepository
	log  *logrus.Logger
}

func NewPayrollHandler(repo repository.PayrollRepository, log *logrus.Logger) PayrollHandler {
	return &payrollHandler{repo: repo, log: log}
}

// List handles GET /api/payrolls
// Query parameters: employee_id, month, year, page, page_size
func (h *payrollHandler) List(c *gin.Context) {
	filter := repository.PayrollFilter{
		EmployeeID: queryInt64(c, "employee_id"),
		Month:      queryInt(c, "month"),
		Year:       queryInt(c, "year"),
		Pagination: pagination(c),
	}

	payrolls, err := h.repo.List(filter)
	if err != nil {
		h.log.Errorf("Failed to list payrolls: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve payrolls"})
		return
	}

	c.JSON(http.StatusOK, payrolls)
}

func (h *payrollHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payroll, err := h.repo.GetByID(id)
	if err != nil {
		respondRepoError(c, h.log, err, "Payroll not found", "")
		return
	}

	c.JSON(http.StatusOK, payroll)
}

func (h *payrollHandler) Create(c *gin.Context) {
	var in models.CreatePayrollInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	payroll, err := h.repo.Create(in)
	if err != nil {
		respondRepoError(c, h.log, err, "", "")
		return
	}

	c.JSON(http.StatusCreated, payroll)
}

func (h *payrollHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.UpdatePayrollInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	payroll, err := h.repo.Update(id, in)
	if err != nil {
		respondRepoError(c, h.log, err, "Payroll not found", "")
		return
	}

	c.JSON(http.StatusOK, payroll)
}

func (h *payrollHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondRepoError(c, h.log, err, "Payroll not found", "")
		return
	}

	c.Status(http.StatusNoContent)
}

// Export handles GET /api/payrolls/export
// Query parameters: employee_id, month, year. Responds with an xlsx attachment.
func (h *payrollHandler) Export(c *gin.Context) {
	filter := repository.PayrollFilter{
		EmployeeID: queryInt64(c, "employee_id"),
		Month:      queryInt(c, "month"),
		Year:       queryInt(c, "year"),
		Pagination: repository.Pagination{Page: 1, PageSize: exportMaxRows},
	}

	payrolls, err := h.repo.List(filter)
	if err != nil {
		h.log.Errorf("Failed to list payrolls for export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to export payrolls"})
		return
	}

	content, err := GeneratePayrollExport(payrolls)
	if err != nil {
		h.log.Errorf("Failed to generate payroll export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to export payrolls"})
		return
	}

	filename := fmt.Sprintf("payrolls_%s.xlsx", time.Now().Format("20060102"))
	writeXLSX(c, filename, content)
}
