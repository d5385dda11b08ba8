package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /api/orders
func (h *OrderController) Create(c *gin.Context) {
	key, identity, ok := cartKey(c)
	if !ok {
		return
	}

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.CustomerName == "" {
		req.CustomerName = identity.DisplayName
	}

	order, err := h.Svc.Create(key, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRestaurantNotFound),
			errors.Is(err, services.ErrMenuItemNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"order": order})
}

// GET /api/profile/orders
func (h *OrderController) ListForMe(c *gin.Context) {
	key, _, ok := cartKey(c)
	if !ok {
		return
	}

	orders, err := h.Svc.ListForUser(key, 50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /api/orders (admin)
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	orders, err := h.Svc.ListAll(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	key, _, ok := cartKey(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	// owners see their own orders, admins see all
	if order.UserKey != key && utils.CurrentRole(c) != "admin" {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, gin.H{"order": order})
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/orders/:id/status (admin)
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateStatus(uint(id), req.Status); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "Order status updated"})
}
