package controllers

import (
	"github.com/gin-gonic/gin"

	"matsal-partner-api/entity"
	"matsal-partner-api/pkg/resp"
	"matsal-partner-api/services"
)

type OrderController struct {
	Orders *services.OrderStore
}

func NewOrderController(orders *services.OrderStore) *OrderController {
	return &OrderController{Orders: orders}
}

// GET /partner/orders?status=&search=
func (ctl *OrderController) List(c *gin.Context) {
	status := c.DefaultQuery("status", services.FilterAll)
	if status != services.FilterAll && !entity.OrderStatus(status).Valid() {
		resp.BadRequest(c, "unknown status: "+status)
		return
	}

	orders := ctl.Orders.Filtered(status, c.Query("search"))
	resp.OK(c, gin.H{"items": orders, "total": len(orders)})
}

// GET /partner/orders/stats
func (ctl *OrderController) Stats(c *gin.Context) {
	resp.OK(c, gin.H{
		"incomingCount":    ctl.Orders.IncomingCount(),
		"todayRevenue":     ctl.Orders.TodayRevenue(),
		"todayOrdersCount": ctl.Orders.TodayOrdersCount(),
		"statusCounts":     ctl.Orders.StatusCounts(),
	})
}

// GET /partner/orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	order, ok := ctl.Orders.Get(c.Param("id"))
	if !ok {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, order)
}

// POST /partner/orders/load?force=
func (ctl *OrderController) Load(c *gin.Context) {
	force := c.Query("force") == "true"
	if err := ctl.Orders.Load(c.Request.Context(), force); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"total": len(ctl.Orders.Orders())})
}

// mutate answers 404 for an unknown id and 409 when the order exists
// but is not in the required state for the transition.
func (ctl *OrderController) mutate(c *gin.Context, apply func(id string) bool) {
	id := c.Param("id")
	if _, ok := ctl.Orders.Get(id); !ok {
		resp.NotFound(c, "order not found")
		return
	}
	if !apply(id) {
		resp.Conflict(c, "order is not in a state that allows this transition")
		return
	}
	order, _ := ctl.Orders.Get(id)
	resp.OK(c, order)
}

// PATCH /partner/orders/:id/accept
func (ctl *OrderController) Accept(c *gin.Context) {
	ctl.mutate(c, ctl.Orders.Accept)
}

type rejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// PATCH /partner/orders/:id/reject
func (ctl *OrderController) Reject(c *gin.Context) {
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.mutate(c, func(id string) bool {
		return ctl.Orders.Reject(id, req.Reason)
	})
}

// PATCH /partner/orders/:id/ready
func (ctl *OrderController) Ready(c *gin.Context) {
	ctl.mutate(c, ctl.Orders.MarkReady)
}

// PATCH /partner/orders/:id/complete
func (ctl *OrderController) Complete(c *gin.Context) {
	ctl.mutate(c, ctl.Orders.MarkPickedUp)
}
