package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentster/rentster-app/middlewares"
	"github.com/rentster/rentster-app/models"
	"github.com/rentster/rentster-app/store"
	"github.com/rentster/rentster-app/utils"
)

type LocationController struct {
	Store *store.Store
}

func NewLocationController(s *store.Store) *LocationController {
	return &LocationController{Store: s}
}

// CreateLocation adds a pickup location. Business owners can only add to
// their own company; admins can name any company.
func (lc *LocationController) CreateLocation(c *gin.Context) {
	type request struct {
		Name      string `json:"name" binding:"required"`
		Address   string `json:"address"`
		CompanyID *uint  `json:"company_id"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	companyID := req.CompanyID
	if actor.Role == models.RoleBusinessOwner {
		companyID = actor.CompanyID
	}
	if companyID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("company_id required"))
		return
	}

	location := models.Location{
		Name:      req.Name,
		Address:   req.Address,
		CompanyID: *companyID,
	}

	locationID, err := lc.Store.CreateLocation(&location)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Location created", gin.H{
		"location_id": locationID,
	})
}

// GetLocations lists locations, optionally filtered by company_id.
func (lc *LocationController) GetLocations(c *gin.Context) {
	companyID, err := optionalUintQuery(c, "company_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	locations, err := lc.Store.GetLocations(companyID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of locations", locations)
}
