package handler

import (
	"net/http"

	"hrms/internal/models"
	"hrms/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PositionHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type positionHandler struct {
	repo repository.PositionRepository
	log  *logrus.Logger
}

func NewPositionHandler(repo repository.PositionRepository, log *logrus.Logger) PositionHandler {
	return &positionHandler{repo: repo, log: log}
}

func (h *positionHandler) List(c *gin.Context) {
	filter := repository.PositionFilter{
		Search:     c.Query("search"),
		Pagination: pagination(c),
	}

	positions, err := h.repo.List(filter)
	if err != nil {
		h.log.Errorf("Failed to list positions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve positions"})
		return
	}

	c.JSON(http.StatusOK, positions)
}

func (h *positionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pos, err := h.repo.GetByID(id)
	if err != nil {
		respondRepoError(c, h.log, err, "Position not found", "")
		return
	}

	c.JSON(http.StatusOK, pos)
}

func (h *positionHandler) Create(c *gin.Context) {
	var in models.CreatePositionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	pos, err := h.repo.Create(in)
	if err != nil {
		respondRepoError(c, h.log, err, "", "Position name already exists")
		return
	}

	c.JSON(http.StatusCreated, pos)
}

func (h *positionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.UpdatePositionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	pos, err := h.repo.Update(id, in)
	if err != nil {
		respondRepoError(c, h.log, err, "Position not found", "Position name already exists")
		return
	}

	c.JSON(http.StatusOK, pos)
}

func (h *positionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.SoftDelete(id); err != nil {
		respondRepoError(c, h.log, err, "Position not found", "")
		return
	}

	c.Status(http.StatusNoContent)
}
