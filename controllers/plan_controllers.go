package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentster/rentster-app/store"
	"github.com/rentster/rentster-app/utils"
)

type PlanController struct {
	Store *store.Store
}

func NewPlanController(s *store.Store) *PlanController {
	return &PlanController{Store: s}
}

// GetAllPlans lists the subscription tiers with a display price.
func (pc *PlanController) GetAllPlans(c *gin.Context) {
	plans, err := pc.Store.GetPlans()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type planView struct {
		ID             uint    `json:"id"`
		Name           string  `json:"name"`
		Price          float64 `json:"price"`
		DisplayPrice   string  `json:"display_price"`
		TransactionFee float64 `json:"transaction_fee"`
		MaxUsers       int     `json:"max_users"`
		MaxLocations   int     `json:"max_locations"`
	}

	views := make([]planView, 0, len(plans))
	for _, plan := range plans {
		views = append(views, planView{
			ID:             plan.ID,
			Name:           plan.Name,
			Price:          plan.Price,
			DisplayPrice:   utils.FormatEUR(plan.Price) + "/month",
			TransactionFee: plan.TransactionFee,
			MaxUsers:       plan.MaxUsers,
			MaxLocations:   plan.MaxLocations,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "List of plans", views)
}
