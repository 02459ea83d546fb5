package handler

import (
	"net/http"

	"hrms/internal/models"
	"hrms/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type EmployeeHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type employeeHandler struct {
	repo repository.EmployeeRepository
	log  *logrus.Logger
}

func NewEmployeeHandler(repo repository.EmployeeRepository, log *logrus.Logger) EmployeeHandler {
	return &employeeHandler{repo: repo, log: log}
}

// List handles GET /api/employees
// Query parameters: search (name or code substring), department_id, status,
// page, page_size
func (h *employeeHandler) List(c *gin.Context) {
	filter := repository.EmployeeFilter{
		Search:       c.Query("search"),
		DepartmentID: queryInt64(c, "department_id"),
		Status:       c.Query("status"),
		Pagination:   pagination(c),
	}

	employees, err := h.repo.List(filter)
	if err != nil {
		h.log.Errorf("Failed to list employees: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve employees"})
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *employeeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	emp, err := h.repo.GetByID(id)
	if err != nil {
		respondRepoError(c, h.log, err, "Employee not found", "")
		return
	}

	c.JSON(http.StatusOK, emp)
}

func (h *employeeHandler) Create(c *gin.Context) {
	var in models.CreateEmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	emp, err := h.repo.Create(in)
	if err != nil {
		respondRepoError(c, h.log, err, "", "Employee code already exists")
		return
	}

	c.JSON(http.StatusCreated, emp)
}

func (h *employeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.UpdateEmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	emp, err := h.repo.Update(id, in)
	if err != nil {
		respondRepoError(c, h.log, err, "Employee not found", "Employee code already exists")
		return
	}

	c.JSON(http.StatusOK, emp)
}

func (h *employeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.SoftDelete(id); err != nil {
		respondRepoError(c, h.log, err, "Employee not found", "")
		return
	}

	c.Status(http.StatusNoContent)
}
