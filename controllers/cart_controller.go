package controllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"kgs-gunshop/models"
	"kgs-gunshop/services"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{cartService: svc}
}

// @Summary Get cart
// @Description Get the session cart with derived totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	view, err := ctrl.cartService.Get(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": view})
}

// @Summary Add item to cart
// @Description Add a product to the session cart; repeated adds merge into one line
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Product summary"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	view, err := ctrl.cartService.AddItem(c.Request.Context(), c.GetString("session_id"), req.Summary(), req.Quantity)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": view})
}

// @Summary Update line item quantity
// @Description Set a line item's quantity; zero or below removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param quantity body models.UpdateCartItemRequest true "Target quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	view, err := ctrl.cartService.UpdateQuantity(c.Request.Context(), c.GetString("session_id"), c.Param("id"), *req.Quantity)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": view})
}

// @Summary Remove line item
// @Description Remove a line item from the cart; unknown ids are a no-op
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /api/cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	view, err := ctrl.cartService.RemoveItem(c.Request.Context(), c.GetString("session_id"), c.Param("id"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item removed", "data": view})
}

// @Summary Clear cart
// @Description Empty the session cart entirely
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	view, err := ctrl.cartService.Clear(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": view})
}

// @Summary Open cart slider
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart/open [post]
func (ctrl *CartController) OpenCart(c *gin.Context) {
	ctrl.visibility(c, ctrl.cartService.Open, "Cart opened")
}

// @Summary Close cart slider
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart/close [post]
func (ctrl *CartController) CloseCart(c *gin.Context) {
	ctrl.visibility(c, ctrl.cartService.Close, "Cart closed")
}

// @Summary Toggle cart slider
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart/toggle [post]
func (ctrl *CartController) ToggleCart(c *gin.Context) {
	ctrl.visibility(c, ctrl.cartService.Toggle, "Cart toggled")
}

func (ctrl *CartController) visibility(c *gin.Context, op func(context.Context, string) (models.CartView, error), message string) {
	view, err := op(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": message, "data": view})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CartWebSocket streams cart snapshots to the session's UI surfaces so the
// navbar badge and slider stay in sync with mutations from any tab.
func (ctrl *CartController) CartWebSocket(c *gin.Context) {
	sessionID := c.GetString("session_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	hub := ctrl.cartService.Hub()
	ch := hub.Subscribe(sessionID)
	defer hub.Unsubscribe(sessionID, ch)

	if view, err := ctrl.cartService.Get(c.Request.Context(), sessionID); err == nil {
		if err := conn.WriteJSON(gin.H{"type": "connected", "cart": view}); err != nil {
			return
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case view, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(gin.H{"type": "cart_updated", "cart": view}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
