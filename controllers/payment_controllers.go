package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentster/rentster-app/models"
	"github.com/rentster/rentster-app/store"
	"github.com/rentster/rentster-app/utils"
)

type PaymentController struct {
	Store *store.Store
}

func NewPaymentController(s *store.Store) *PaymentController {
	return &PaymentController{Store: s}
}

// CreatePayment records a payment row against a booking. No gateway is
// called; this is bookkeeping only.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	type request struct {
		BookingID     uint    `json:"booking_id" binding:"required"`
		Amount        float64 `json:"amount" binding:"required"`
		PaymentDate   string  `json:"payment_date" binding:"required"`
		PaymentMethod string  `json:"payment_method"`
		TransactionID string  `json:"transaction_id"`
		Status        string  `json:"status"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment := models.Payment{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Status:        req.Status,
	}

	paymentID, err := pc.Store.CreatePayment(&payment)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Payment recorded: id=%d booking=%d amount=%s",
		paymentID, req.BookingID, utils.FormatEUR(req.Amount))

	utils.RespondJSON(c, http.StatusCreated, "Payment recorded", gin.H{
		"payment_id": paymentID,
	})
}

// GetPayments lists payments, optionally filtered by booking_id.
func (pc *PaymentController) GetPayments(c *gin.Context) {
	bookingID, err := optionalUintQuery(c, "booking_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payments, err := pc.Store.GetPayments(bookingID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of payments", payments)
}
