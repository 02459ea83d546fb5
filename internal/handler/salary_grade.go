package handler

import (
	"net/http"

	"hrms/internal/models"
	"hrms/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SalaryGradeHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type salaryGradeHandler struct {
	repo repository.SalaryGradeRepository
	log  *logrus.Logger
}

func NewSalaryGradeHandler(repo repository.SalaryGradeRepository, log *logrus.Logger) SalaryGradeHandler {
	return &salaryGradeHandler{repo: repo, log: log}
}

func (h *salaryGradeHandler) List(c *gin.Context) {
	filter := repository.SalaryGradeFilter{
		Search:     c.Query("search"),
		Pagination: pagination(c),
	}

	grades, err := h.repo.List(filter)
	if err != nil {
		h.log.Errorf("Failed to list salary grades: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve salary grades"})
		return
	}

	c.JSON(http.StatusOK, grades)
}

func (h *salaryGradeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	grade, err := h.repo.GetByID(id)
	if err != nil {
		respondRepoError(c, h.log, err, "Salary grade not found", "")
		return
	}

	c.JSON(http.StatusOK, grade)
}

func (h *salaryGradeHandler) Create(c *gin.Context) {
	var in models.CreateSalaryGradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	grade, err := h.repo.Create(in)
	if err != nil {
		respondRepoError(c, h.log, err, "", "Salary grade name already exists")
		return
	}

	c.JSON(http.StatusCreated, grade)
}

func (h *salaryGradeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.UpdateSalaryGradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	grade, err := h.repo.Update(id, in)
	if err != nil {
		respondRepoError(c, h.log, err, "Salary grade not found", "Salary grade name already exists")
		return
	}

	c.JSON(http.StatusOK, grade)
}

func (h *salaryGradeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.SoftDelete(id); err != nil {
		respondRepoError(c, h.log, err, "Salary grade not found", "")
		return
	}

	c.Status(http.StatusNoContent)
}
