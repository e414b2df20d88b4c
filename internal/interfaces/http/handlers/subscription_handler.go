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

type subscriptionService interface {
	ListPlans(ctx context.Context) ([]*entities.Plan, error)
	CreateOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateOrderInput) (*entities.Sale, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entities.Sale, error)
	ListPendingOrders(ctx context.Context, params utils.PaginationParams) ([]*entities.Sale, *utils.PaginationMeta, error)
	ApproveOrder(ctx context.Context, saleID uuid.UUID) (*entities.Sale, error)
	RejectOrder(ctx context.Context, saleID uuid.UUID) error
	ValidateCoupon(ctx context.Context, code string) (*entities.Coupon, error)
	CreateCoupon(ctx context.Context, input *entities.CreateCouponInput) (*entities.Coupon, error)
	ListCoupons(ctx context.Context) ([]*entities.Coupon, error)
	DeactivateCoupon(ctx context.Context, id uuid.UUID) error
}

// SubscriptionHandler handles plan, order and coupon endpoints
type SubscriptionHandler struct {
	subscriptionService subscriptionService
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionService subscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// ListPlans returns purchasable plans
// GET /api/v1/plans
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.subscriptionService.ListPlans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"plans": plans})
}

// CreateOrder records a bank-transfer order
// POST /api/v1/orders
func (h *SubscriptionHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	sale, err := h.subscriptionService.CreateOrder(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, sale)
}

// ListOrders returns the caller's orders
// GET /api/v1/orders
func (h *SubscriptionHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	sales, err := h.subscriptionService.ListOrders(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": sales})
}

// ValidateCoupon checks a discount code
// GET /api/v1/coupons/:code
func (h *SubscriptionHandler) ValidateCoupon(c *gin.Context) {
	coupon, err := h.subscriptionService.ValidateCoupon(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"code":       coupon.Code,
		"percentOff": coupon.PercentOff,
	})
}

// ListPendingOrders returns orders awaiting approval
// GET /api/v1/admin/orders
func (h *SubscriptionHandler) ListPendingOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	sales, meta, err := h.subscriptionService.ListPendingOrders(c.Request.Context(), utils.GetPaginationParams(page, limit))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders":     sales,
		"pagination": meta,
	})
}

// ApproveOrder approves a pending order and activates the subscription
// POST /api/v1/admin/orders/:id/approve
func (h *SubscriptionHandler) ApproveOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid order id"))
		return
	}

	sale, err := h.subscriptionService.ApproveOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, sale)
}

// RejectOrder rejects a pending order
// POST /api/v1/admin/orders/:id/reject
func (h *SubscriptionHandler) RejectOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid order id"))
		return
	}

	if err := h.subscriptionService.RejectOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "order rejected"})
}

// CreateCoupon registers a discount code
// POST /api/v1/admin/coupons
func (h *SubscriptionHandler) CreateCoupon(c *gin.Context) {
	var input entities.CreateCouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	coupon, err := h.subscriptionService.CreateCoupon(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, coupon)
}

// ListCoupons returns all coupons
// GET /api/v1/admin/coupons
func (h *SubscriptionHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.subscriptionService.ListCoupons(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"coupons": coupons})
}

// DeactivateCoupon retires a coupon
// DELETE /api/v1/admin/coupons/:id
func (h *SubscriptionHandler) DeactivateCoupon(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid coupon id"))
		return
	}

	if err := h.subscriptionService.DeactivateCoupon(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "coupon deactivated"})
}
