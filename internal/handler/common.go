package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hrms/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// parseID reads the :id path parameter. On failure it writes a 400 response
// and reports false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id"})
		return 0, false
	}
	return id, true
}

// pagination reads page/page_size query parameters. Unparsable values come
// back as zero and are clamped by the repository layer.
func pagination(c *gin.Context) repository.Pagination {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return repository.Pagination{Page: page, PageSize: pageSize}
}

func queryInt64(c *gin.Context, name string) int64 {
	v, _ := strconv.ParseInt(c.Query(name), 10, 64)
	return v
}

func queryInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}

// respondRepoError maps repository errors onto the HTTP surface: 404 for
// missing rows, 409 for uniqueness conflicts, 500 otherwise.
func respondRepoError(c *gin.Context, log *logrus.Logger, err error, notFoundDetail, conflictDetail string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": notFoundDetail})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"detail": conflictDetail})
	default:
		log.Errorf("Repository error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
