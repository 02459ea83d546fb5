package handler

import (
	"net/http"

	"hrms/internal/models"
	"hrms/internal/repository"
	"hrms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UserHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	UpdatePassword(c *gin.Context)
	Delete(c *gin.Context)
}

type userHandler struct {
	repo   repository.UserRepository
	hasher *service.PasswordHasher
	log    *logrus.Logger
}

func NewUserHandler(repo repository.UserRepository, hasher *service.PasswordHasher, log *logrus.Logger) UserHandler {
	return &userHandler{repo: repo, hasher: hasher, log: log}
}

func (h *userHandler) List(c *gin.Context) {
	filter := repository.UserFilter{
		Search:     c.Query("search"),
		Pagination: pagination(c),
	}

	users, err := h.repo.List(filter)
	if err != nil {
		h.log.Errorf("Failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *userHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.repo.GetByID(id)
	if err != nil {
		respondRepoError(c, h.log, err, "User not found", "")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *userHandler) Create(c *gin.Context) {
	var in models.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	passwordHash, err := h.hasher.Hash(in.Password)
	if err != nil {
		h.log.Errorf("Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create user"})
		return
	}

	user, err := h.repo.Create(in, passwordHash)
	if err != nil {
		respondRepoError(c, h.log, err, "", "Email already exists")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *userHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.UpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.repo.Update(id, in)
	if err != nil {
		respondRepoError(c, h.log, err, "User not found", "Email already exists")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdatePassword handles PUT /api/users/:id/password
func (h *userHandler) UpdatePassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.UpdatePasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	passwordHash, err := h.hasher.Hash(in.Password)
	if err != nil {
		h.log.Errorf("Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to update password"})
		return
	}

	if err := h.repo.UpdatePasswordHash(id, passwordHash); err != nil {
		respondRepoError(c, h.log, err, "User not found", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (h *userHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.SoftDelete(id); err != nil {
		respondRepoError(c, h.log, err, "User not found", "")
		return
	}

	c.Status(http.StatusNoContent)
}
