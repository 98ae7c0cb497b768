package controllers

import (
	"strconv"
	"strings"

	"fortumars-mart/libs"
	"fortumars-mart/models"
	"fortumars-mart/store"
	"fortumars-mart/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	App *store.Controller
}

// @Summary Get all categories
// @Description Get the fixed department list, "All" sentinel first
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetCategories(c *gin.Context) {
	c.JSON(200, models.Response{Success: true, Message: "Categories retrieved", Data: models.Categories})
}

// @Summary Get visible products
// @Description Products matching the current search query and category selector, in catalog order
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	c.JSON(200, models.Response{Success: true, Message: "Products retrieved", Data: ctrl.App.VisibleProducts()})
}

// @Summary Get product by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	for _, p := range ctrl.App.Catalog() {
		if p.ID == id {
			c.JSON(200, models.Response{Success: true, Message: "Product retrieved", Data: p})
			return
		}
	}
	c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
}

// @Summary Add a product (admin)
// @Description Creates a product document, then re-fetches the catalog so the listing reflects the remote truth
// @Tags Catalog
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string true "Description"
// @Param price formData string true "Price, e.g. 49.99"
// @Param category formData string true "Category"
// @Param image formData string false "Image URL (used when no file is uploaded)"
// @Param badge formData string false "Badge label"
// @Param file formData file false "Image file"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *CatalogController) CreateProduct(c *gin.Context) {
	var req models.AddProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Missing required fields", Error: err.Error()})
		return
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(req.Price), 64)
	if err != nil || price < 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid price"})
		return
	}

	if req.Category == models.CategoryAll || !models.IsValidCategory(req.Category) {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid category"})
		return
	}

	image := req.Image
	if fileHeader, err := c.FormFile("file"); err == nil {
		localPath, err := utils.SaveUpload(c, fileHeader, "products")
		if err != nil {
			c.JSON(400, models.ErrorResponse{Success: false, Message: err.Error()})
			return
		}
		hosted, err := libs.UploadProductImage(localPath)
		if err != nil {
			c.JSON(502, models.ErrorResponse{Success: false, Message: "Image upload failed", Error: err.Error()})
			return
		}
		image = hosted
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Category:    req.Category,
		Image:       image,
		Badge:       req.Badge,
	}

	if err := ctrl.App.AddProduct(c.Request.Context(), product); err != nil {
		c.JSON(502, models.ErrorResponse{Success: false, Message: "Failed to add product", Error: err.Error()})
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Product added", Data: ctrl.App.Snapshot()})
}
