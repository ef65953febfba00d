package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"matsal-partner-api/entity"
	"matsal-partner-api/pkg/resp"
	"matsal-partner-api/services"
)

type MenuController struct {
	Menu *services.MenuStore
}

func NewMenuController(menu *services.MenuStore) *MenuController {
	return &MenuController{Menu: menu}
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

// ----- Items -----

// GET /partner/menu/items?category=&search=
func (ctl *MenuController) ListItems(c *gin.Context) {
	category, _ := strconv.Atoi(c.Query("category"))
	items := ctl.Menu.FilteredItems(category, c.Query("search"))
	resp.OK(c, gin.H{"items": items, "total": len(items)})
}

type createItemRequest struct {
	Name           string            `json:"name" binding:"required"`
	Description    string            `json:"description"`
	Price          int64             `json:"price" binding:"required,min=0"`
	Category       int               `json:"category" binding:"required"`
	Available      bool              `json:"available"`
	Image          string            `json:"image"`
	Weight         int               `json:"weight"`
	Nutrition      *entity.Nutrition `json:"nutrition"`
	Allergens      []entity.Allergen `json:"allergens"`
	ModifierGroups []int             `json:"modifierGroups"`
}

// POST /partner/menu/items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := ctl.Menu.AddItem(entity.MenuItem{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		Available:      req.Available,
		Image:          req.Image,
		Weight:         req.Weight,
		Nutrition:      req.Nutrition,
		Allergens:      req.Allergens,
		ModifierGroups: req.ModifierGroups,
	})
	resp.Created(c, item)
}

// PATCH /partner/menu/items/:id
func (ctl *MenuController) UpdateItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch services.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !ctl.Menu.UpdateItem(id, patch) {
		resp.NotFound(c, "menu item not found")
		return
	}
	item, _ := ctl.Menu.Item(id)
	resp.OK(c, item)
}

// DELETE /partner/menu/items/:id
func (ctl *MenuController) DeleteItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !ctl.Menu.DeleteItem(id) {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}

// PATCH /partner/menu/items/:id/availability
func (ctl *MenuController) ToggleAvailability(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !ctl.Menu.ToggleAvailability(id) {
		resp.NotFound(c, "menu item not found")
		return
	}
	item, _ := ctl.Menu.Item(id)
	resp.OK(c, item)
}

type bulkAvailabilityRequest struct {
	IDs       []int `json:"ids" binding:"required"`
	Available *bool `json:"available" binding:"required"`
}

// POST /partner/menu/items/bulk-availability
func (ctl *MenuController) BulkAvailability(c *gin.Context) {
	var req bulkAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	affected := ctl.Menu.BulkToggleAvailability(req.IDs, *req.Available)
	resp.OK(c, gin.H{"affected": affected})
}

type bulkDeleteRequest struct {
	IDs []int `json:"ids" binding:"required"`
}

// POST /partner/menu/items/bulk-delete
func (ctl *MenuController) BulkDelete(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	removed := ctl.Menu.BulkDelete(req.IDs)
	resp.OK(c, gin.H{"removed": removed})
}

// ----- Categories -----

// GET /partner/menu/categories
func (ctl *MenuController) ListCategories(c *gin.Context) {
	cats := ctl.Menu.SortedCategories()
	resp.OK(c, gin.H{"items": cats, "total": len(cats)})
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /partner/menu/categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, ctl.Menu.AddCategory(req.Name))
}

// PATCH /partner/menu/categories/:id
func (ctl *MenuController) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !ctl.Menu.UpdateCategory(id, req.Name) {
		resp.NotFound(c, "category not found")
		return
	}
	resp.OK(c, gin.H{"message": "category updated"})
}

// DELETE /partner/menu/categories/:id
//
// Cascades to every item in the category; the panel confirms with the
// operator before calling this.
func (ctl *MenuController) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !ctl.Menu.DeleteCategory(id) {
		resp.NotFound(c, "category not found")
		return
	}
	resp.OK(c, gin.H{"message": "category and its items deleted"})
}

type reorderRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}

// PUT /partner/menu/categories/reorder
func (ctl *MenuController) ReorderCategories(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Menu.ReorderCategories(req.IDs)
	resp.OK(c, gin.H{"items": ctl.Menu.SortedCategories()})
}

// ----- Modifier groups -----

// GET /partner/menu/modifier-groups
func (ctl *MenuController) ListModifierGroups(c *gin.Context) {
	groups := ctl.Menu.ModifierGroups()
	resp.OK(c, gin.H{"items": groups, "total": len(groups)})
}

type createGroupRequest struct {
	Name      string            `json:"name" binding:"required"`
	Required  bool              `json:"required"`
	MaxSelect int               `json:"maxSelect" binding:"min=0"`
	Modifiers []entity.Modifier `json:"modifiers"`
}

// POST /partner/menu/modifier-groups
func (ctl *MenuController) CreateModifierGroup(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	group := ctl.Menu.AddModifierGroup(entity.ModifierGroup{
		Name:      req.Name,
		Required:  req.Required,
		MaxSelect: req.MaxSelect,
		Modifiers: req.Modifiers,
	})
	resp.Created(c, group)
}

// PATCH /partner/menu/modifier-groups/:id
func (ctl *MenuController) UpdateModifierGroup(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch services.ModifierGroupPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !ctl.Menu.UpdateModifierGroup(id, patch) {
		resp.NotFound(c, "modifier group not found")
		return
	}
	resp.OK(c, gin.H{"message": "modifier group updated"})
}

// DELETE /partner/menu/modifier-groups/:id
func (ctl *MenuController) DeleteModifierGroup(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !ctl.Menu.DeleteModifierGroup(id) {
		resp.NotFound(c, "modifier group not found")
		return
	}
	resp.OK(c, gin.H{"message": "modifier group deleted"})
}

// POST /partner/menu/load?force=
func (ctl *MenuController) Load(c *gin.Context) {
	force := c.Query("force") == "true"
	if err := ctl.Menu.Load(c.Request.Context(), force); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": len(ctl.Menu.Items())})
}
