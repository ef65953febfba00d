package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"matsal-partner-api/pkg/resp"
	"matsal-partner-api/services"
)

type RestaurantController struct {
	Restaurant *services.RestaurantStore
}

func NewRestaurantController(restaurant *services.RestaurantStore) *RestaurantController {
	return &RestaurantController{Restaurant: restaurant}
}

// GET /partner/restaurant
func (ctl *RestaurantController) Get(c *gin.Context) {
	profile, ok := ctl.Restaurant.Profile()
	if !ok {
		resp.NotFound(c, "restaurant profile not loaded")
		return
	}
	resp.OK(c, profile)
}

// PATCH /partner/restaurant
func (ctl *RestaurantController) Update(c *gin.Context) {
	var patch services.RestaurantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	profile, err := ctl.Restaurant.Update(c.Request.Context(), patch)
	if err != nil {
		if errors.Is(err, services.ErrNotLoaded) {
			resp.NotFound(c, "restaurant profile not loaded")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, profile)
}

// PATCH /partner/restaurant/toggle-open
func (ctl *RestaurantController) ToggleOpen(c *gin.Context) {
	profile, err := ctl.Restaurant.ToggleOpen(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotLoaded) {
			resp.NotFound(c, "restaurant profile not loaded")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, profile)
}
