// cart.go - per-user cart endpoints (all behind the auth gate)

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"karigar-backend/middleware"
)

type AddToCartInput struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

type RemoveFromCartInput struct {
	ItemID int `json:"itemId"`
}

// AddToCart bumps the cart line for an item by the requested quantity.
// Negative quantities are accepted; removal is the only way a line is reset.
func (a *API) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetString(middleware.ContextUserID)
	user, err := a.Store.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	user.CartData[strconv.Itoa(input.ItemID)] += input.Quantity
	if err := a.Store.UpdateUserCart(c.Request.Context(), userID, user.CartData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, "Added")
}

// RemoveFromCart resets the item's line to zero when it holds a positive
// quantity. It does not decrement.
func (a *API) RemoveFromCart(c *gin.Context) {
	var input RemoveFromCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetString(middleware.ContextUserID)
	user, err := a.Store.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	key := strconv.Itoa(input.ItemID)
	if user.CartData[key] > 0 {
		user.CartData[key] = 0
	}
	if err := a.Store.UpdateUserCart(c.Request.Context(), userID, user.CartData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, "Removed")
}

func (a *API) GetCart(c *gin.Context) {
	user, err := a.Store.GetUserByID(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user.CartData)
}
