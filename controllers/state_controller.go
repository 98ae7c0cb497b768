package controllers

import (
	"fortumars-mart/models"
	"fortumars-mart/store"

	"github.com/gin-gonic/gin"
)

// StateController exposes the view-controller state machine over HTTP. Every
// mutation goes through the single store.Controller instance.
type StateController struct {
	App *store.Controller
}

// @Summary Get application state
// @Description Snapshot of the current storefront state: view, filters, catalog, cart, identity
// @Tags State
// @Produce json
// @Success 200 {object} models.Response
// @Router /state [get]
func (ctrl *StateController) GetState(c *gin.Context) {
	c.JSON(200, models.Response{Success: true, Message: "State retrieved", Data: ctrl.App.Snapshot()})
}

// @Summary Set search query
// @Tags State
// @Accept json
// @Produce json
// @Param request body models.SearchRequest true "Search query"
// @Success 200 {object} models.Response
// @Router /state/search [post]
func (ctrl *StateController) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}
	ctrl.App.SetQuery(req.Query)
	c.JSON(200, models.Response{Success: true, Message: "Search updated", Data: ctrl.App.Snapshot()})
}

// @Summary Select a department
// @Description Switches category; resets the query, clears any selected product, returns to Home
// @Tags State
// @Accept json
// @Produce json
// @Param request body models.CategoryRequest true "Category"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /state/category [post]
func (ctrl *StateController) SelectCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}
	if !ctrl.App.SelectCategory(req.Category) {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Unknown category"})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Category selected", Data: ctrl.App.Snapshot()})
}

// @Summary Home navigation
// @Description Resets filter criteria to defaults and clears any selected product
// @Tags State
// @Produce json
// @Success 200 {object} models.Response
// @Router /state/home [post]
func (ctrl *StateController) Home(c *gin.Context) {
	ctrl.App.GoHome()
	c.JSON(200, models.Response{Success: true, Message: "Back home", Data: ctrl.App.Snapshot()})
}

// @Summary Open product detail
// @Tags State
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /state/select/{id} [post]
func (ctrl *StateController) SelectProduct(c *gin.Context) {
	if !ctrl.App.SelectProduct(c.Param("id")) {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Product selected", Data: ctrl.App.Snapshot()})
}

// @Summary Toggle dark mode
// @Tags State
// @Produce json
// @Success 200 {object} models.Response
// @Router /state/dark-mode [post]
func (ctrl *StateController) ToggleDarkMode(c *gin.Context) {
	dark := ctrl.App.ToggleDarkMode()
	c.JSON(200, models.Response{Success: true, Message: "Dark mode updated", Data: gin.H{"dark_mode": dark}})
}
