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

type RestaurantController struct {
	Catalog *services.CatalogService
}

func NewRestaurantController(catalog *services.CatalogService) *RestaurantController {
	return &RestaurantController{Catalog: catalog}
}

// GET /api/restaurants
func (h *RestaurantController) List(c *gin.Context) {
	restaurants, err := h.Catalog.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": restaurants})
}

type restaurantIn struct {
	Name         string   `json:"name" binding:"required"`
	Cuisine      string   `json:"cuisine"`
	PriceRange   string   `json:"priceRange"`
	DeliveryTime string   `json:"deliveryTime"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
}

// POST /api/restaurants (admin). The id is the slugified name, so it has to
// be unique among existing restaurants.
func (h *RestaurantController) Create(c *gin.Context) {
	var req restaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest := entity.Restaurant{
		ID:           utils.Slugify(req.Name),
		Name:         req.Name,
		Cuisine:      req.Cuisine,
		PriceRange:   req.PriceRange,
		DeliveryTime: req.DeliveryTime,
		Rating:       req.Rating,
		Reviews:      req.Reviews,
		Description:  req.Description,
		Images:       req.Images,
	}
	if rest.ID == "" {
		resp.BadRequest(c, "name does not produce a usable id")
		return
	}
	if _, err := h.Catalog.Get(rest.ID); err == nil {
		resp.Conflict(c, "restaurant already exists")
		return
	}

	if err := h.Catalog.Restaurants.Create(&rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Restaurant added successfully", "restaurant": rest})
}

// PUT /api/restaurants/:restaurantId (admin)
func (h *RestaurantController) Update(c *gin.Context) {
	id := c.Param("restaurantId")

	rest, err := h.Catalog.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req restaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest.Name = req.Name
	rest.Cuisine = req.Cuisine
	rest.PriceRange = req.PriceRange
	rest.DeliveryTime = req.DeliveryTime
	rest.Rating = req.Rating
	rest.Reviews = req.Reviews
	rest.Description = req.Description
	if req.Images != nil {
		rest.Images = req.Images
	}

	if err := h.Catalog.Restaurants.Update(rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Restaurant updated successfully", "restaurant": rest})
}

// DELETE /api/restaurants/:restaurantId (admin). Menu items go with it.
func (h *RestaurantController) Delete(c *gin.Context) {
	id := c.Param("restaurantId")

	if _, err := h.Catalog.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if err := h.Catalog.Restaurants.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Restaurant deleted successfully"})
}
