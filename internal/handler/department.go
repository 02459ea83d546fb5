package handler

import (
	"net/http"

	"hrms/internal/models"
	"hrms/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DepartmentHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type departmentHandler struct {
	repo repository.DepartmentRepository
	log  *logrus.Logger
}

func NewDepartmentHandler(repo repository.DepartmentRepository, log *logrus.Logger) DepartmentHandler {
	return &departmentHandler{repo: repo, log: log}
}

// List handles GET /api/departments
// Query parameters: search (name substring), page, page_size
func (h *departmentHandler) List(c *gin.Context) {
	filter := repository.DepartmentFilter{
		Search:     c.Query("search"),
		Pagination: pagination(c),
	}

	departments, err := h.repo.List(filter)
	if err != nil {
		h.log.Errorf("Failed to list departments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve departments"})
		return
	}

	c.JSON(http.StatusOK, departments)
}

func (h *departmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dept, err := h.repo.GetByID(id)
	if err != nil {
		respondRepoError(c, h.log, err, "Department not found", "")
		return
	}

	c.JSON(http.StatusOK, dept)
}

func (h *departmentHandler) Create(c *gin.Context) {
	var in models.CreateDepartmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	dept, err := h.repo.Create(in)
	if err != nil {
		respondRepoError(c, h.log, err, "", "Department name already exists")
		return
	}

	c.JSON(http.StatusCreated, dept)
}

func (h *departmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.UpdateDepartmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	dept, err := h.repo.Update(id, in)
	if err != nil {
		respondRepoError(c, h.log, err, "Department not found", "Department name already exists")
		return
	}

	c.JSON(http.StatusOK, dept)
}

func (h *departmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.SoftDelete(id); err != nil {
		respondRepoError(c, h.log, err, "Department not found", "")
		return
	}

	c.Status(http.StatusNoContent)
}
