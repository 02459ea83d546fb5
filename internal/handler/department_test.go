package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrms/internal/models"
	"hrms/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDepartmentRepo keeps departments in a map, mimicking the repository's
// soft-delete and name-uniqueness behavior without a database.
type stubDepartmentRepo struct {
	nextID int64
	byID   map[int64]*models.Department
}

func newStubDepartmentRepo() *stubDepartmentRepo {
	return &stubDepartmentRepo{nextID: 1, byID: map[int64]*models.Department{}}
}

func (s *stubDepartmentRepo) List(filter repository.DepartmentFilter) ([]*models.Department, error) {
	out := []*models.Department{}
	for _, d := range s.byID {
		if d.Deleted {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *stubDepartmentRepo) GetByID(id int64) (*models.Department, error) {
	d, ok := s.byID[id]
	if !ok || d.Deleted {
		return nil, repository.ErrNotFound
	}
	return d, nil
}

func (s *stubDepartmentRepo) Create(in models.CreateDepartmentInput) (*models.Department, error) {
	for _, d := range s.byID {
		if !d.Deleted && d.Name == in.Name {
			return nil, repository.ErrConflict
		}
	}
	d := &models.Department{
		ID:          s.nextID,
		Name:        in.Name,
		Description: in.Description,
		Phone:       in.Phone,
		ManagerID:   in.ManagerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.byID[d.ID] = d
	s.nextID++
	return d, nil
}

func (s *stubDepartmentRepo) Update(id int64, in models.UpdateDepartmentInput) (*models.Department, error) {
	d, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		for _, other := range s.byID {
			if other.ID != id && !other.Deleted && other.Name == *in.Name {
				return nil, repository.ErrConflict
			}
		}
	}
	d.Apply(in)
	d.UpdatedAt = time.Now()
	return d, nil
}

func (s *stubDepartmentRepo) SoftDelete(id int64) error {
	d, err := s.GetByID(id)
	if err != nil {
		return err
	}
	now := time.Now()
	d.Deleted = true
	d.DeletedAt = &now
	return nil
}

func newDepartmentRouter(repo repository.DepartmentRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	log := logrus.New()
	log.SetOutput(io.Discard)

	h := NewDepartmentHandler(repo, log)
	group := router.Group("/api/departments")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDepartmentCreateAndGet(t *testing.T) {
	router := newDepartmentRouter(newStubDepartmentRepo())

	w := doJSON(router, http.MethodPost, "/api/departments", `{"name":"Engineering","phone":"555-0100"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Department
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Engineering", created.Name)

	w = doJSON(router, http.MethodGet, "/api/departments/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Engineering"`)
}

func TestDepartmentCreateValidation(t *testing.T) {
	router := newDepartmentRouter(newStubDepartmentRepo())

	w := doJSON(router, http.MethodPost, "/api/departments", `{"phone":"555-0100"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDepartmentCreateDuplicateName(t *testing.T) {
	router := newDepartmentRouter(newStubDepartmentRepo())

	w := doJSON(router, http.MethodPost, "/api/departments", `{"name":"Engineering"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/departments", `{"name":"Engineering"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Department name already exists")
}

func TestDepartmentGetInvalidID(t *testing.T) {
	router := newDepartmentRouter(newStubDepartmentRepo())

	w := doJSON(router, http.MethodGet, "/api/departments/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid id")
}

func TestDepartmentUpdatePartial(t *testing.T) {
	repo := newStubDepartmentRepo()
	router := newDepartmentRouter(repo)

	w := doJSON(router, http.MethodPost, "/api/departments", `{"name":"Engineering","phone":"555-0100"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPut, "/api/departments/1", `{"name":"Platform"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Department
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Platform", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0100", *updated.Phone)
}

func TestDepartmentDeleteLifecycle(t *testing.T) {
	repo := newStubDepartmentRepo()
	router := newDepartmentRouter(repo)

	w := doJSON(router, http.MethodPost, "/api/departments", `{"name":"Engineering"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/departments/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The deleted row is gone from reads and deletes.
	w = doJSON(router, http.MethodGet, "/api/departments/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Department not found")

	w = doJSON(router, http.MethodDelete, "/api/departments/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The name is free again for a new department.
	w = doJSON(router, http.MethodPost, "/api/departments", `{"name":"Engineering"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDepartmentListFiltersSearch(t *testing.T) {
	repo := newStubDepartmentRepo()
	router := newDepartmentRouter(repo)

	for _, name := range []string{"Engineering", "Finance", "Financial Control"} {
		w := doJSON(router, http.MethodPost, "/api/departments", `{"name":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/departments?search=fin", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Department
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}
