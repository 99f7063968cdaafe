package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemAndBookingFlow(t *testing.T) {
	r := setupTestApp(t)

	// An admin sets up the company catalogue.
	adminToken := registerAndLogin(t, r, "admin", "admin@example.com", "admin", nil)

	w := doJSON(t, r, "POST", "/admin/companies", adminToken, map[string]interface{}{
		"name":    "Tool Depot",
		"plan_id": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	companyID := uint(decodeData(t, w)["company_id"].(float64))

	w = doJSON(t, r, "POST", "/items", adminToken, map[string]interface{}{
		"name":          "Drill",
		"category":      "power tools",
		"company_id":    companyID,
		"price_per_day": 15.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	itemID := uint(decodeData(t, w)["item_id"].(float64))

	// Anyone can browse the catalogue.
	w = doJSON(t, r, "GET", "/items", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// A customer books the drill.
	customerToken := registerAndLogin(t, r, "renter", "renter@example.com", "customer", nil)

	w = doJSON(t, r, "POST", "/bookings", customerToken, map[string]interface{}{
		"item_id":     itemID,
		"start_date":  "2025-01-01",
		"end_date":    "2025-01-03",
		"total_price": 45.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "pending", data["status"])
	bookingID := uint(data["booking_id"].(float64))

	// Reversed dates are rejected before the store is touched.
	w = doJSON(t, r, "POST", "/bookings", customerToken, map[string]interface{}{
		"item_id":     itemID,
		"start_date":  "2025-01-05",
		"end_date":    "2025-01-02",
		"total_price": 45.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The customer sees exactly their own booking.
	w = doJSON(t, r, "GET", "/bookings", customerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Data []struct {
			ID       uint    `json:"id"`
			ItemName string  `json:"item_name"`
			Total    float64 `json:"total_price"`
			Status   string  `json:"status"`
		} `json:"data"`
	}
	assert.NoError(t, decodeInto(w, &listResp))
	assert.Len(t, listResp.Data, 1)
	assert.Equal(t, bookingID, listResp.Data[0].ID)
	assert.Equal(t, "Drill", listResp.Data[0].ItemName)
	assert.Equal(t, 45.0, listResp.Data[0].Total)
	assert.Equal(t, "pending", listResp.Data[0].Status)

	// A customer cannot confirm bookings.
	w = doJSON(t, r, "PATCH", "/bookings/1/status", customerToken, map[string]string{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The admin can.
	w = doJSON(t, r, "PATCH", "/bookings/1/status", adminToken, map[string]string{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Payment is recorded against the booking, nothing more.
	w = doJSON(t, r, "POST", "/payments", customerToken, map[string]interface{}{
		"booking_id":   bookingID,
		"amount":       45.0,
		"payment_date": "2025-01-01",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}
