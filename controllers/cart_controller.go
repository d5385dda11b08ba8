package controllers

import (
	"errors"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Carts    *services.CartService
	Catalog  *services.CatalogService
	Checkout *services.CheckoutService
}

func NewCartController(carts *services.CartService, catalog *services.CatalogService,
	checkout *services.CheckoutService) *CartController {
	return &CartController{Carts: carts, Catalog: catalog, Checkout: checkout}
}

// cartKey resolves the caller's cart key or writes the sign-in prompt. Every
// cart route refuses to touch storage without a key.
func cartKey(c *gin.Context) (string, *entity.Identity, bool) {
	identity := utils.CurrentIdentity(c)
	key, err := services.ResolveCartKey(identity)
	if err != nil {
		resp.Unauthorized(c, "please sign in")
		return "", nil, false
	}
	return key, identity, true
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	key, _, ok := cartKey(c)
	if !ok {
		return
	}

	entries, err := h.Carts.Load(key)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": entries, "subtotal": services.Subtotal(entries)})
}

type addCartItemReq struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
	ItemID       string `json:"itemId" binding:"required"`
	Quantity     int    `json:"quantity"`
}

// POST /api/cart/items
func (h *CartController) AddItem(c *gin.Context) {
	key, _, ok := cartKey(c)
	if !ok {
		return
	}

	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// snapshot the item from the catalog at add time
	item, err := h.Catalog.MenuItem(h.Catalog.ResolveIdentifier(req.RestaurantID), req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if err := h.Carts.Add(key, item, req.Quantity); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Item added to cart"})
}

type setQuantityReq struct {
	Quantity int `json:"quantity"`
}

// PATCH /api/cart/items/:itemId
func (h *CartController) SetQuantity(c *gin.Context) {
	key, _, ok := cartKey(c)
	if !ok {
		return
	}

	var req setQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := h.Carts.SetQuantity(key, c.Param("itemId"), req.Quantity)
	if errors.Is(err, services.ErrItemNotInCart) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Cart updated"})
}

// DELETE /api/cart/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	key, _, ok := cartKey(c)
	if !ok {
		return
	}

	if err := h.Carts.Remove(key, c.Param("itemId")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Item removed from cart"})
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	key, _, ok := cartKey(c)
	if !ok {
		return
	}

	if err := h.Carts.Clear(key); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Cart cleared"})
}

// POST /api/cart/checkout
func (h *CartController) PlaceOrders(c *gin.Context) {
	key, identity, ok := cartKey(c)
	if !ok {
		return
	}

	outcomes, err := h.Checkout.Checkout(key, identity.DisplayName)
	if errors.Is(err, services.ErrEmptyCart) {
		resp.BadRequest(c, "Your cart is empty")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"results": outcomes})
}
