package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"kgs-gunshop/models"
	"kgs-gunshop/repositories"
	"kgs-gunshop/services"
)

type OrderController struct {
	orderService *services.OrderService
	cartService  *services.CartService
}

func NewOrderController(orderSvc *services.OrderService, cartSvc *services.CartService) *OrderController {
	return &OrderController{orderService: orderSvc, cartService: cartSvc}
}

// @Summary Place order
// @Description Submit the cart for in-store pickup; totals are recomputed server-side
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.OrderRequest true "Order submission"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	order, err := ctrl.orderService.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDonation) || errors.Is(err, services.ErrInvalidQuantity) || errors.Is(err, services.ErrInvalidPrice) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to place order. Please try again or call the store."})
		return
	}

	// the order is in; clearing the cart is best-effort and never fails the request
	if sessionID := c.GetString("session_id"); sessionID != "" {
		if _, err := ctrl.cartService.Clear(c.Request.Context(), sessionID); err != nil {
			log.Println("Failed to clear cart after order:", err)
		}
	}

	c.JSON(201, gin.H{"success": true, "message": "Order placed successfully", "data": order})
}

// @Summary Get order by number
// @Description Look up an order confirmation
// @Tags Orders
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orders/{number} [get]
func (ctrl *OrderController) GetOrderByNumber(c *gin.Context) {
	order, err := ctrl.orderService.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to load order"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}
