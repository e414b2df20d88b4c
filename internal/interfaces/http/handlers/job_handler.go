package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cvnest.backend/internal/domain/entities"
	domainerrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/interfaces/http/middleware"
	"cvnest.backend/internal/interfaces/http/response"
	"cvnest.backend/pkg/utils"
)

type jobService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input *entities.CreateJobInput) (*entities.JobListing, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.JobListing, error)
	List(ctx context.Context, filter entities.JobFilter, params utils.PaginationParams) ([]*entities.JobListing, *utils.PaginationMeta, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateJobInput) (*entities.JobListing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobHandler handles job board endpoints
type JobHandler struct {
	jobService jobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService jobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List returns published listings, filtered and paginated
// GET /api/v1/jobs
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	filter := entities.JobFilter{
		Keyword:    c.Query("q"),
		Location:   c.Query("location"),
		OnlyActive: true,
	}

	jobs, meta, err := h.jobService.List(c.Request.Context(), filter, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"jobs":       jobs,
		"pagination": meta,
	})
}

// Get returns one listing
// GET /api/v1/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid job id"))
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, job)
}

// Create publishes a listing
// POST /api/v1/jobs
func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, job)
}

// Update applies partial changes to a listing
// PUT /api/v1/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid job id"))
		return
	}

	var input entities.UpdateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, job)
}

// Delete removes a listing
// DELETE /api/v1/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid job id"))
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "job deleted"})
}
