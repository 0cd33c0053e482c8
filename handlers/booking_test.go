package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karigar-backend/models"
)

func TestBookWorkerAndList(t *testing.T) {
	_, r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/bookings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/bookWorker", gin.H{
		"workerId":    "w-17",
		"workerTitle": "Mason",
		"workerCost":  800.0,
		"city":        "Pune",
		"bookingDetails": gin.H{
			"clientName":    "Asha",
			"clientContact": "98765",
			"date":          "2026-09-01",
			"totalCost":     2400.0,
			"numLaborers":   3,
		},
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Booking confirmed", body["message"])

	w = doJSON(t, r, http.MethodGet, "/bookings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, "Mason", bookings[0].WorkerTitle)
	assert.Equal(t, "Asha", bookings[0].ClientName)
	assert.Equal(t, 3, bookings[0].NumLaborers)
}

func TestBookWorkerRejectsMissingDetails(t *testing.T) {
	_, r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/bookWorker", gin.H{"workerId": "w-17"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Failed to create booking", decodeBody(t, w)["message"])
}
