package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/printmate/storefront-backend/models"
	"github.com/printmate/storefront-backend/services"
)

type ICatalogService interface {
	ListProducts(ctx context.Context, params services.ListProductsParams) ([]*models.Product, int64, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	RelatedProducts(ctx context.Context, id uuid.UUID) ([]*models.Product, error)
}

type ProductController struct {
	service ICatalogService
}

func NewProductController(service ICatalogService) *ProductController {
	return &ProductController{service: service}
}

// ListProducts handles GET /products with the storefront's listing controls.
func (pc *ProductController) ListProducts(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "24"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)

	products, total, err := pc.service.ListProducts(c.Request.Context(), services.ListProductsParams{
		Category: c.Query("category"),
		Query:    c.Query("q"),
		Sort:     c.Query("sort"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
}

// GetProduct handles GET /products/:id
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	product, err := pc.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// RelatedProducts handles GET /products/:id/related
func (pc *ProductController) RelatedProducts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	products, err := pc.service.RelatedProducts(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}
