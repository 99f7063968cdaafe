package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rentster/rentster-app/middlewares"
	"github.com/rentster/rentster-app/models"
	"github.com/rentster/rentster-app/store"
	"github.com/rentster/rentster-app/utils"
)

type BookingController struct {
	Store *store.Store
}

func NewBookingController(s *store.Store) *BookingController {
	return &BookingController{Store: s}
}

// CreateBooking reserves an item for the caller. The booking always
// starts out "pending"; availability is not checked.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	type request struct {
		ItemID     uint    `json:"item_id" binding:"required"`
		StartDate  string  `json:"start_date" binding:"required"`
		EndDate    string  `json:"end_date" binding:"required"`
		TotalPrice float64 `json:"total_price" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.EndDate < req.StartDate {
		utils.RespondError(c, http.StatusBadRequest, errors.New("end_date before start_date"))
		return
	}

	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	bookingID, err := bc.Store.CreateBooking(req.ItemID, actor.UserID, req.StartDate, req.EndDate, req.TotalPrice)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New booking: id=%d item=%d user=%d", bookingID, req.ItemID, actor.UserID)

	utils.RespondJSON(c, http.StatusCreated, "Booking created", gin.H{
		"booking_id": bookingID,
		"status":     models.BookingPending,
	})
}

// GetBookings lists bookings scoped to the caller: customers see their
// own, business owners their company's, admins everything. Admins may
// also pass ?user_id= or ?company_id=.
func (bc *BookingController) GetBookings(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	userID, companyID := actor.BookingScope()
	if actor.Role == models.RoleAdmin {
		var err error
		if userID, err = optionalUintQuery(c, "user_id"); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		if userID == nil {
			if companyID, err = optionalUintQuery(c, "company_id"); err != nil {
				utils.RespondError(c, http.StatusBadRequest, err)
				return
			}
		}
	}

	bookings, err := bc.Store.GetBookings(userID, companyID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// UpdateBookingStatus moves a booking through its lifecycle.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid booking_id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := bc.Store.UpdateBookingStatus(uint(bookingID), req.Status); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidValue):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, store.ErrNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking status updated", gin.H{
		"booking_id": bookingID,
		"status":     req.Status,
	})
}
