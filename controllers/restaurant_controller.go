package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/resp"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/services"
)

type RestaurantController struct {
	Rests *services.RestaurantService
}

func NewRestaurantController(rests *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Rests: rests}
}

type RestaurantRequest struct {
	Name         string         `json:"name" binding:"required"`
	Category     string         `json:"category"`
	PriceRange   string         `json:"priceRange"`
	MinPrice     int64          `json:"minPrice"`
	DeliveryTime int            `json:"deliveryTime"`
	Criteria     datatypes.JSON `json:"criteria"`
}

// GET /api/restaurants?limit=&offset=
func (rc *RestaurantController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := rc.Rests.List(limit, offset)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /api/restaurants/:id — numeric id or slug.
func (rc *RestaurantController) Detail(c *gin.Context) {
	param := c.Param("id")
	if id, err := strconv.ParseUint(param, 10, 64); err == nil {
		rest, err := rc.Rests.Get(uint(id))
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, gin.H{"restaurant": rest})
		return
	}

	rest, err := rc.Rests.GetBySlug(param)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest})
}

// POST /api/restaurants (admin+)
func (rc *RestaurantController) Create(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := rc.Rests.Create(services.RestaurantInput{
		Name:         req.Name,
		Category:     req.Category,
		PriceRange:   req.PriceRange,
		MinPrice:     req.MinPrice,
		DeliveryTime: req.DeliveryTime,
		Criteria:     req.Criteria,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"restaurant": rest})
}

type UpdateRestaurantRequest struct {
	Name         *string         `json:"name"`
	Category     *string         `json:"category"`
	PriceRange   *string         `json:"priceRange"`
	MinPrice     *int64          `json:"minPrice"`
	DeliveryTime *int            `json:"deliveryTime"`
	Criteria     *datatypes.JSON `json:"criteria"`
	IsActive     *bool           `json:"isActive"`
}

// PUT /api/restaurants/:id (admin+)
func (rc *RestaurantController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.PriceRange != nil {
		updates["price_range"] = *req.PriceRange
	}
	if req.MinPrice != nil {
		updates["min_price"] = *req.MinPrice
	}
	if req.DeliveryTime != nil {
		updates["delivery_time"] = *req.DeliveryTime
	}
	if req.Criteria != nil {
		updates["criteria"] = *req.Criteria
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	rest, err := rc.Rests.Update(id, updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest})
}

// DELETE /api/restaurants/:id (admin+)
func (rc *RestaurantController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := rc.Rests.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
