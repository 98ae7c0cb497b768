package controllers

import (
	"fortumars-mart/models"
	"fortumars-mart/store"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	App *store.Controller
}

// @Summary Add item to cart
// @Description Inserts a line with quantity 1, or increments the existing line
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.CartAddRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.CartAddRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}
	if !ctrl.App.AddToCart(req.ProductID) {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Added to cart", Data: ctrl.App.Snapshot()})
}

// @Summary Adjust line quantity
// @Description Applies a delta to the line quantity, floored at 1; no-op for unknown ids
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.CartAdjustRequest true "Quantity delta"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) AdjustItem(c *gin.Context) {
	var req models.CartAdjustRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}
	ctrl.App.AdjustCartQuantity(c.Param("id"), req.Delta)
	c.JSON(200, models.Response{Success: true, Message: "Quantity updated", Data: ctrl.App.Snapshot()})
}

// @Summary Remove line from cart
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	ctrl.App.RemoveFromCart(c.Param("id"))
	c.JSON(200, models.Response{Success: true, Message: "Removed from cart", Data: ctrl.App.Snapshot()})
}

// @Summary Open the cart panel
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/open [post]
func (ctrl *CartController) Open(c *gin.Context) {
	ctrl.App.OpenCart()
	c.JSON(200, models.Response{Success: true, Message: "Cart opened", Data: ctrl.App.Snapshot()})
}

// @Summary Close the cart panel
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/close [post]
func (ctrl *CartController) Close(c *gin.Context) {
	ctrl.App.CloseCart()
	c.JSON(200, models.Response{Success: true, Message: "Cart closed", Data: ctrl.App.Snapshot()})
}

// @Summary Checkout
// @Description Without a signed-in identity: moves to Login, keeps the cart. With one: clears the cart and confirms.
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	ok, notice := ctrl.App.Checkout(c.Request.Context())
	c.JSON(200, models.Response{Success: ok, Message: notice, Data: ctrl.App.Snapshot()})
}
