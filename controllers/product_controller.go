package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"kgs-gunshop/repositories"
	"kgs-gunshop/services"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{productService: svc}
}

// @Summary Get all products
// @Description Get the full product catalog
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.productService.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load products"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Products retrieved", "data": products})
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to load product"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Get products by category
// @Description Get products filtered by category name
// @Tags Products
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {object} models.Response
// @Router /api/products/category/{category} [get]
func (ctrl *ProductController) GetProductsByCategory(c *gin.Context) {
	products, err := ctrl.productService.GetProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load products"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Products retrieved", "data": products})
}

// @Summary Get all categories
// @Description Get list of product categories
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.productService.GetAllCategories(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load categories"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}
