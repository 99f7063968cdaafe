package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rentster/rentster-app/models"
	"github.com/rentster/rentster-app/store"
	"github.com/rentster/rentster-app/utils"
)

type CompanyController struct {
	Store *store.Store
}

func NewCompanyController(s *store.Store) *CompanyController {
	return &CompanyController{Store: s}
}

// optionalUintQuery parses a query parameter into an optional id filter.
// Absent or empty means no filter.
func optionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	id := uint(parsed)
	return &id, nil
}

// CreateCompany registers a company on a plan.
func (cc *CompanyController) CreateCompany(c *gin.Context) {
	type request struct {
		Name    string `json:"name" binding:"required"`
		RegCode string `json:"reg_code"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Website string `json:"website"`
		PlanID  uint   `json:"plan_id" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	company := models.Company{
		Name:    req.Name,
		RegCode: req.RegCode,
		Phone:   req.Phone,
		Address: req.Address,
		Website: req.Website,
		PlanID:  req.PlanID,
	}

	companyID, err := cc.Store.CreateCompany(&company)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			utils.RespondError(c, http.StatusConflict, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New company registered: %s (plan_id=%d)", req.Name, req.PlanID)

	utils.RespondJSON(c, http.StatusCreated, "Company created", gin.H{
		"company_id": companyID,
	})
}

// GetAllCompanies -> admin listing with plans preloaded.
func (cc *CompanyController) GetAllCompanies(c *gin.Context) {
	companies, err := cc.Store.GetCompanies()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of companies", companies)
}
