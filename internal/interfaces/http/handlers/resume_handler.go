package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cvnest.backend/internal/domain/entities"
	domainerrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/interfaces/http/middleware"
	"cvnest.backend/internal/interfaces/http/response"
)

type resumeService interface {
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreateResumeInput) (*entities.Resume, error)
	Get(ctx context.Context, userID, resumeID uuid.UUID) (*entities.Resume, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Resume, error)
	Update(ctx context.Context, userID, resumeID uuid.UUID, input *entities.UpdateResumeInput) (*entities.Resume, error)
	Delete(ctx context.Context, userID, resumeID uuid.UUID) error
	Enhance(ctx context.Context, userID, resumeID uuid.UUID, input *entities.EnhanceResumeInput) (*entities.EnhanceResumeResult, error)
}

// ResumeHandler handles resume endpoints
type ResumeHandler struct {
	resumeService resumeService
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(resumeService resumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// Create stores a new resume
// POST /api/v1/resumes
func (h *ResumeHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateResumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resume, err := h.resumeService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resume)
}

// List returns the caller's resumes
// GET /api/v1/resumes
func (h *ResumeHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	resumes, err := h.resumeService.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"resumes": resumes})
}

// Get returns one resume
// GET /api/v1/resumes/:id
func (h *ResumeHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid resume id"))
		return
	}

	resume, err := h.resumeService.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, resume)
}

// Update applies partial changes to a resume
// PUT /api/v1/resumes/:id
func (h *ResumeHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid resume id"))
		return
	}

	var input entities.UpdateResumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resume, err := h.resumeService.Update(c.Request.Context(), userID, resumeID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, resume)
}

// Delete removes a resume
// DELETE /api/v1/resumes/:id
func (h *ResumeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid resume id"))
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), userID, resumeID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "resume deleted"})
}

// Enhance rewrites one section with the AI service
// POST /api/v1/resumes/:id/enhance
func (h *ResumeHandler) Enhance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid resume id"))
		return
	}

	var input entities.EnhanceResumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.resumeService.Enhance(c.Request.Context(), userID, resumeID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
