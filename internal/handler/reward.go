package handler

import (
	"net/http"

	"hrms/internal/models"
	"hrms/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RewardHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type rewardHandler struct {
	repo repository.RewardRepository
	log  *logrus.Logger
}

func NewRewardHandler(repo repository.RewardRepository, log *logrus.Logger) RewardHandler {
	return &rewardHandler{repo: repo, log: log}
}

// List handles GET /api/rewards
// Query parameters: employee_id, type (reward|discipline), page, page_size
func (h *rewardHandler) List(c *gin.Context) {
	filter := repository.RewardFilter{
		EmployeeID: queryInt64(c, "employee_id"),
		Type:       c.Query("type"),
		Pagination: pagination(c),
	}

	rewards, err := h.repo.List(filter)
	if err != nil {
		h.log.Errorf("Failed to list rewards: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve rewards"})
		return
	}

	c.JSON(http.StatusOK, rewards)
}

func (h *rewardHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reward, err := h.repo.GetByID(id)
	if err != nil {
		respondRepoError(c, h.log, err, "Reward/discipline record not found", "")
		return
	}

	c.JSON(http.StatusOK, reward)
}

func (h *rewardHandler) Create(c *gin.Context) {
	var in models.CreateRewardInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	reward, err := h.repo.Create(in)
	if err != nil {
		respondRepoError(c, h.log, err, "", "")
		return
	}

	c.JSON(http.StatusCreated, reward)
}

func (h *rewardHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.UpdateRewardInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	reward, err := h.repo.Update(id, in)
	if err != nil {
		respondRepoError(c, h.log, err, "Reward/discipline record not found", "")
		return
	}

	c.JSON(http.StatusOK, reward)
}

func (h *rewardHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondRepoError(c, h.log, err, "Reward/discipline record not found", "")
		return
	}

	c.Status(http.StatusNoContent)
}
