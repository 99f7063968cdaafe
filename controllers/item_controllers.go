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

type ItemController struct {
	Store *store.Store
}

func NewItemController(s *store.Store) *ItemController {
	return &ItemController{Store: s}
}

// GetAllItems lists the catalogue joined with company and location
// names. Public; ?company_id= narrows to one company.
func (ic *ItemController) GetAllItems(c *gin.Context) {
	companyID, err := optionalUintQuery(c, "company_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	items, err := ic.Store.GetRentalItems(companyID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of rental items", items)
}

// GetMyItems lists the caller's company catalogue (business owners).
func (ic *ItemController) GetMyItems(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	items, err := ic.Store.GetRentalItems(actor.ItemScope())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of rental items", items)
}

// CreateItem adds an item to the caller's company.
func (ic *ItemController) CreateItem(c *gin.Context) {
	type request struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		CompanyID   *uint   `json:"company_id"`
		LocationID  *uint   `json:"location_id"`
		Status      string  `json:"availability_status"`
		PricePerDay float64 `json:"price_per_day" binding:"required"`
		ImageURL    string  `json:"image_url"`
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

	item := models.RentalItem{
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		CompanyID:          *companyID,
		LocationID:         req.LocationID,
		AvailabilityStatus: req.Status,
		PricePerDay:        req.PricePerDay,
		ImageURL:           req.ImageURL,
	}

	itemID, err := ic.Store.CreateRentalItem(&item)
	if err != nil {
		if errors.Is(err, store.ErrInvalidValue) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New rental item: %s (company_id=%d)", req.Name, *companyID)

	utils.RespondJSON(c, http.StatusCreated, "Rental item created", gin.H{
		"item_id": itemID,
	})
}

// UpdateItemStatus changes an item's availability status.
func (ic *ItemController) UpdateItemStatus(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item_id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ic.Store.UpdateItemStatus(uint(itemID), req.Status); err != nil {
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

	utils.RespondJSON(c, http.StatusOK, "Item status updated", gin.H{
		"item_id": itemID,
		"status":  req.Status,
	})
}
