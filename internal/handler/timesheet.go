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

type TimesheetHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Export(c *gin.Context)
}

type timesheetHandler struct {
	repo repository.TimesheetRepository
	log  *logrus.Logger
}

func NewTimesheetHandler(repo repository.TimesheetRepository, log *logrus.Logger) TimesheetHandler {
	return &timesheetHandler{repo: repo, log: log}
}

// List handles GET /api/timesheets
// Query parameters: employee_id, date (YYYY-MM-DD), page, page_size
func (h *timesheetHandler) List(c *gin.Context) {
	filter := repository.TimesheetFilter{
		EmployeeID: queryInt64(c, "employee_id"),
		Date:       c.Query("date"),
		Pagination: pagination(c),
	}

	timesheets, err := h.repo.List(filter)
	if err != nil {
		h.log.Errorf("Failed to list timesheets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve timesheets"})
		return
	}

	c.JSON(http.StatusOK, timesheets)
}

func (h *timesheetHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ts, err := h.repo.GetByID(id)
	if err != nil {
		respondRepoError(c, h.log, err, "Timesheet not found", "")
		return
	}

	c.JSON(http.StatusOK, ts)
}

func (h *timesheetHandler) Create(c *gin.Context) {
	var in models.CreateTimesheetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ts, err := h.repo.Create(in)
	if err != nil {
		respondRepoError(c, h.log, err, "", "")
		return
	}

	c.JSON(http.StatusCreated, ts)
}

func (h *timesheetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.UpdateTimesheetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ts, err := h.repo.Update(id, in)
	if err != nil {
		respondRepoError(c, h.log, err, "Timesheet not found", "")
		return
	}

	c.JSON(http.StatusOK, ts)
}

func (h *timesheetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondRepoError(c, h.log, err, "Timesheet not found", "")
		return
	}

	c.Status(http.StatusNoContent)
}

// Export handles GET /api/timesheets/export
// Query parameters: employee_id, from, to (YYYY-MM-DD). Responds with an
// xlsx attachment.
func (h *timesheetHandler) Export(c *gin.Context) {
	filter := repository.TimesheetFilter{
		EmployeeID: queryInt64(c, "employee_id"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		Pagination: repository.Pagination{Page: 1, PageSize: exportMaxRows},
	}

	timesheets, err := h.repo.List(filter)
	if err != nil {
		h.log.Errorf("Failed to list timesheets for export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to export timesheets"})
		return
	}

	content, err := GenerateTimesheetExport(timesheets)
	if err != nil {
		h.log.Errorf("Failed to generate timesheet export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to export timesheets"})
		return
	}

	filename := fmt.Sprintf("timesheets_%s.xlsx", time.Now().Format("20060102"))
	writeXLSX(c, filename, content)
}
