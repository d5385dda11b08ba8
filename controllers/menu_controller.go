package controllers

import (
	"errors"
	"strconv"
	"time"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GET /api/menu/:restaurantId
// Accepts either an id or human text ("Golden Bakery"); unknown restaurants
// get an empty menu, matching what clients have always been shown. A storage
// failure is a real error, not an empty menu.
func (h *MenuController) GetMenu(c *gin.Context) {
	id := h.Catalog.ResolveIdentifier(c.Param("restaurantId"))

	menu, err := h.Catalog.Menu(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"menu": menu})
}

type menuItemIn struct {
	Name                string   `json:"name" binding:"required"`
	Price               int64    `json:"price"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailedDescription"`
	Category            string   `json:"category"`
	Image               string   `json:"image"`
	Ingredients         []string `json:"ingredients"`
	Allergens           []string `json:"allergens"`
	IsVegetarian        bool     `json:"isVegetarian"`
	PreparationTime     string   `json:"preparationTime"`
	Rating              float64  `json:"rating"`
	SpicyLevel          string   `json:"spicyLevel"`
	ServingSize         string   `json:"servingSize"`
	IsAvailable         bool     `json:"isAvailable"`
}

func (in *menuItemIn) apply(item *entity.MenuItem) {
	item.Name = in.Name
	item.Price = in.Price
	item.Description = in.Description
	item.DetailedDescription = in.DetailedDescription
	item.Category = in.Category
	item.Image = in.Image
	item.Ingredients = in.Ingredients
	item.Allergens = in.Allergens
	item.IsVegetarian = in.IsVegetarian
	item.PreparationTime = in.PreparationTime
	item.Rating = in.Rating
	item.SpicyLevel = in.SpicyLevel
	item.ServingSize = in.ServingSize
	item.IsAvailable = in.IsAvailable
}

// POST /api/menu/:restaurantId (admin)
func (h *MenuController) AddItem(c *gin.Context) {
	restaurantID := c.Param("restaurantId")

	if _, err := h.Catalog.Get(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		// millisecond timestamp ids, same scheme the old backend used
		ID:           strconv.FormatInt(time.Now().UnixMilli(), 10),
		RestaurantID: restaurantID,
	}
	req.apply(&item)

	if err := h.Catalog.Menus.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Menu item added successfully", "item": item})
}

// PUT /api/menu/:restaurantId/:itemId (admin)
func (h *MenuController) UpdateItem(c *gin.Context) {
	restaurantID := c.Param("restaurantId")
	itemID := c.Param("itemId")

	item, err := h.Catalog.MenuItem(restaurantID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.apply(item)

	if err := h.Catalog.Menus.Update(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Menu item updated successfully", "item": item})
}

// DELETE /api/menu/:restaurantId/:itemId (admin)
func (h *MenuController) DeleteItem(c *gin.Context) {
	restaurantID := c.Param("restaurantId")
	itemID := c.Param("itemId")

	if _, err := h.Catalog.MenuItem(restaurantID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if err := h.Catalog.Menus.Delete(restaurantID, itemID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Menu item deleted successfully"})
}
