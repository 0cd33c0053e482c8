// booking.go - worker-booking ledger endpoints

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"karigar-backend/models"
)

type BookWorkerInput struct {
	WorkerID       string  `json:"workerId" binding:"required"`
	WorkerTitle    string  `json:"workerTitle" binding:"required"`
	WorkerCost     float64 `json:"workerCost"`
	City           string  `json:"city"`
	BookingDetails struct {
		ClientName    string  `json:"clientName" binding:"required"`
		ClientContact string  `json:"clientContact" binding:"required"`
		Date          string  `json:"date"`
		TotalCost     float64 `json:"totalCost"`
		NumLaborers   int     `json:"numLaborers"`
	} `json:"bookingDetails" binding:"required"`
}

// BookWorker records a worker booking. Bookings are a standalone ledger with
// no relation to users or works.
func (a *API) BookWorker(c *gin.Context) {
	var input BookWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to create booking", "error": err.Error()})
		return
	}
	booking := models.Booking{
		WorkerID:      input.WorkerID,
		WorkerTitle:   input.WorkerTitle,
		WorkerCost:    input.WorkerCost,
		City:          input.City,
		ClientName:    input.BookingDetails.ClientName,
		ClientContact: input.BookingDetails.ClientContact,
		Date:          input.BookingDetails.Date,
		TotalCost:     input.BookingDetails.TotalCost,
		NumLaborers:   input.BookingDetails.NumLaborers,
	}
	if err := a.Store.CreateBooking(c.Request.Context(), &booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create booking", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking confirmed"})
}

func (a *API) Bookings(c *gin.Context) {
	bookings, err := a.Store.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
