package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentster/rentster-app/models"
	"github.com/rentster/rentster-app/store"
	"github.com/rentster/rentster-app/utils"
)

type SignatureController struct {
	Store *store.Store
}

func NewSignatureController(s *store.Store) *SignatureController {
	return &SignatureController{Store: s}
}

// CreateSignature stores a signature payload for a booking document.
// The payload is kept verbatim and never verified.
func (sc *SignatureController) CreateSignature(c *gin.Context) {
	type request struct {
		BookingID     uint   `json:"booking_id" binding:"required"`
		DocumentID    string `json:"document_id" binding:"required"`
		SignatureData string `json:"signature_data" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sig := models.DigitalSignature{
		BookingID:     req.BookingID,
		DocumentID:    req.DocumentID,
		SignatureData: req.SignatureData,
		SignedAt:      time.Now(),
	}

	sigID, err := sc.Store.CreateSignature(&sig)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Signature stored", gin.H{
		"signature_id": sigID,
	})
}

// GetSignatures lists signatures, optionally filtered by booking_id.
func (sc *SignatureController) GetSignatures(c *gin.Context) {
	bookingID, err := optionalUintQuery(c, "booking_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sigs, err := sc.Store.GetSignatures(bookingID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of signatures", sigs)
}
