package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cvnest.backend/internal/domain/entities"
	"cvnest.backend/internal/interfaces/http/response"
	"cvnest.backend/internal/usecases"
	"cvnest.backend/pkg/utils"
)

type adminService interface {
	ListUsers(ctx context.Context, search string, params utils.PaginationParams) ([]*entities.User, *utils.PaginationMeta, error)
	Stats(ctx context.Context) (*usecases.AdminStats, error)
}

// AdminHandler handles the moderation dashboard endpoints
type AdminHandler struct {
	adminService adminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService adminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers returns accounts, searchable and paginated
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, meta, err := h.adminService.ListUsers(c.Request.Context(), c.Query("q"), utils.GetPaginationParams(page, limit))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users":      users,
		"pagination": meta,
	})
}

// Stats returns dashboard counters
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
