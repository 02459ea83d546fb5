package handler

import (
	"net/http"

	"hrms/internal/models"
	"hrms/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ContractHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type contractHandler struct {
	repo repository.ContractRepository
	log  *logrus.Logger
}

func NewContractHandler(repo repository.ContractRepository, log *logrus.Logger) ContractHandler {
	return &contractHandler{repo: repo, log: log}
}

// List handles GET /api/contracts
// Query parameters: employee_id, page, page_size
func (h *contractHandler) List(c *gin.Context) {
	filter := repository.ContractFilter{
		EmployeeID: queryInt64(c, "employee_id"),
		Pagination: pagination(c),
	}

	contracts, err := h.repo.List(filter)
	if err != nil {
		h.log.Errorf("Failed to list contracts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve contracts"})
		return
	}

	c.JSON(http.StatusOK, contracts)
}

func (h *contractHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contract, err := h.repo.GetByID(id)
	if err != nil {
		respondRepoError(c, h.log, err, "Contract not found", "")
		return
	}

	c.JSON(http.StatusOK, contract)
}

func (h *contractHandler) Create(c *gin.Context) {
	var in models.CreateContractInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	contract, err := h.repo.Create(in)
	if err != nil {
		respondRepoError(c, h.log, err, "", "")
		return
	}

	c.JSON(http.StatusCreated, contract)
}

func (h *contractHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.UpdateContractInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	contract, err := h.repo.Update(id, in)
	if err != nil {
		respondRepoError(c, h.log, err, "Contract not found", "")
		return
	}

	c.JSON(http.StatusOK, contract)
}

func (h *contractHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondRepoError(c, h.log, err, "Contract not found", "")
		return
	}

	c.Status(http.StatusNoContent)
}
