package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentster/rentster-app/models"
	"github.com/rentster/rentster-app/store"
	"github.com/rentster/rentster-app/utils"
)

type AccessController struct {
	Store *store.Store
}

func NewAccessController(s *store.Store) *AccessController {
	return &AccessController{Store: s}
}

// CreateAccessCode grants a user a door code for a location during a
// validity window.
func (ac *AccessController) CreateAccessCode(c *gin.Context) {
	type request struct {
		LocationID uint      `json:"location_id" binding:"required"`
		UserID     uint      `json:"user_id" binding:"required"`
		AccessCode string    `json:"access_code" binding:"required"`
		ValidFrom  time.Time `json:"valid_from" binding:"required"`
		ValidTo    time.Time `json:"valid_to" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	grant := models.AccessControl{
		LocationID: req.LocationID,
		UserID:     req.UserID,
		AccessCode: req.AccessCode,
		ValidFrom:  req.ValidFrom,
		ValidTo:    req.ValidTo,
	}

	grantID, err := ac.Store.CreateAccessCode(&grant)
	if err != nil {
		if errors.Is(err, store.ErrInvalidValue) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Access code created", gin.H{
		"access_id": grantID,
	})
}

// GetAccessCodes lists access grants, optionally filtered by location_id.
func (ac *AccessController) GetAccessCodes(c *gin.Context) {
	locationID, err := optionalUintQuery(c, "location_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	codes, err := ac.Store.GetAccessCodes(locationID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of access codes", codes)
}
