package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the liveness endpoint.
func (a *API) Health(c *gin.Context) {
	c.String(http.StatusOK, "Karigar API is running")
}
