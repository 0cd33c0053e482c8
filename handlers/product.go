// product.go - product catalog endpoints

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"karigar-backend/models"
	"karigar-backend/store"
)

// uploadFolder is the prefix every hosted product image lives under.
const uploadFolder = "product"

type AddProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Image       string  `json:"image" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	NewPrice    float64 `json:"new_price" binding:"required"`
	AGradePrice float64 `json:"aGradePrice"`
	BGradePrice float64 `json:"bGradePrice"`
	Brand       string  `json:"brand"`
	Unit        string  `json:"unit"`
	Size        string  `json:"size"`
	Description string  `json:"description" binding:"required"`
}

type RemoveProductInput struct {
	ID   int    `json:"id" binding:"required"`
	Name string `json:"name"`
}

// Upload hosts the multipart "product" field (a base64/data-URL image) and
// returns the resulting URL.
func (a *API) Upload(c *gin.Context) {
	payload := c.PostForm("product")
	if payload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing product image"})
		return
	}
	url, err := a.Uploader.Upload(c.Request.Context(), uploadFolder, payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "image_url": url})
}

func (a *API) AddProduct(c *gin.Context) {
	var input AddProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	product := models.Product{
		Name:        input.Name,
		Image:       input.Image,
		Category:    input.Category,
		NewPrice:    input.NewPrice,
		AGradePrice: input.AGradePrice,
		BGradePrice: input.BGradePrice,
		Brand:       input.Brand,
		Unit:        input.Unit,
		Size:        input.Size,
		Description: input.Description,
	}
	if err := a.Store.CreateProduct(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "name": product.Name})
}

func (a *API) RemoveProduct(c *gin.Context) {
	var input RemoveProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	err := a.Store.DeleteProductByID(c.Request.Context(), input.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "name": input.Name})
}

func (a *API) AllProducts(c *gin.Context) {
	products, err := a.Store.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// PopularProducts returns the 3rd through 6th products in insertion order,
// the slice the storefront's "popular" rail has always shown.
func (a *API) PopularProducts(c *gin.Context) {
	products, err := a.Store.ListProductsByInsertion(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	lo, hi := 2, 6
	if lo > len(products) {
		lo = len(products)
	}
	if hi > len(products) {
		hi = len(products)
	}
	c.JSON(http.StatusOK, products[lo:hi])
}

func (a *API) ProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	product, err := a.Store.GetProductByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}
