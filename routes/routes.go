package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"matsal-partner-api/configs"
	"matsal-partner-api/controllers"
	"matsal-partner-api/middlewares"
	"matsal-partner-api/services"
)

type Deps struct {
	Cfg        *configs.Config
	Auth       *services.AuthService
	Orders     *services.OrderStore
	Menu       *services.MenuStore
	Restaurant *services.RestaurantStore
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware(d.Cfg.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authCtrl := controllers.NewAuthController(d.Auth)
	orderCtrl := controllers.NewOrderController(d.Orders)
	menuCtrl := controllers.NewMenuController(d.Menu)
	restCtrl := controllers.NewRestaurantController(d.Restaurant)

	secret := d.Cfg.JWTSecret

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", middlewares.RateLimit(rate.Limit(1), 5), authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(secret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.POST("/refresh", authCtrl.Refresh)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Orders: any authenticated partner role
	orders := r.Group("/partner/orders", middlewares.AuthMiddleware(secret))
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/stats", orderCtrl.Stats)
		orders.POST("/load", orderCtrl.Load)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id/accept", orderCtrl.Accept)
		orders.PATCH("/:id/reject", orderCtrl.Reject)
		orders.PATCH("/:id/ready", orderCtrl.Ready)
		orders.PATCH("/:id/complete", orderCtrl.Complete)
	}

	// Menu: reads for everyone, writes for admin/manager
	menu := r.Group("/partner/menu", middlewares.AuthMiddleware(secret))
	{
		menu.GET("/items", menuCtrl.ListItems)
		menu.GET("/categories", menuCtrl.ListCategories)
		menu.GET("/modifier-groups", menuCtrl.ListModifierGroups)
		menu.POST("/load", menuCtrl.Load)
	}
	menuEdit := r.Group("/partner/menu", middlewares.AuthMiddleware(secret, "admin", "manager"))
	{
		menuEdit.POST("/items", menuCtrl.CreateItem)
		menuEdit.PATCH("/items/:id", menuCtrl.UpdateItem)
		menuEdit.DELETE("/items/:id", menuCtrl.DeleteItem)
		menuEdit.PATCH("/items/:id/availability", menuCtrl.ToggleAvailability)
		menuEdit.POST("/items/bulk-availability", menuCtrl.BulkAvailability)
		menuEdit.POST("/items/bulk-delete", menuCtrl.BulkDelete)
		menuEdit.POST("/categories", menuCtrl.CreateCategory)
		menuEdit.PUT("/categories/reorder", menuCtrl.ReorderCategories)
		menuEdit.PATCH("/categories/:id", menuCtrl.UpdateCategory)
		menuEdit.DELETE("/categories/:id", menuCtrl.DeleteCategory)
		menuEdit.POST("/modifier-groups", menuCtrl.CreateModifierGroup)
		menuEdit.PATCH("/modifier-groups/:id", menuCtrl.UpdateModifierGroup)
		menuEdit.DELETE("/modifier-groups/:id", menuCtrl.DeleteModifierGroup)
	}

	// Restaurant profile
	rest := r.Group("/partner/restaurant", middlewares.AuthMiddleware(secret))
	{
		rest.GET("", restCtrl.Get)
	}
	restEdit := r.Group("/partner/restaurant", middlewares.AuthMiddleware(secret, "admin", "manager"))
	{
		restEdit.PATCH("", restCtrl.Update)
		restEdit.PATCH("/toggle-open", restCtrl.ToggleOpen)
	}
}
