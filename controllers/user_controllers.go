package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentster/rentster-app/middlewares"
	"github.com/rentster/rentster-app/store"
	"github.com/rentster/rentster-app/utils"
)

type UserController struct {
	Store *store.Store
}

func NewUserController(s *store.Store) *UserController {
	return &UserController{Store: s}
}

// Register a new user
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Username  string `json:"username" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required"`
		Role      string `json:"role" binding:"required"` // admin, business_owner, customer
		CompanyID *uint  `json:"company_id"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	userID, err := uc.Store.CreateUser(req.Username, req.Email, req.Password, req.Role, req.CompanyID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateKey):
			utils.RespondError(c, http.StatusConflict, err)
		case errors.Is(err, store.ErrInvalidValue):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", req.Email, req.Role)

	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"user_id": userID,
	})
}

// Login -> return JWT
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.Store.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.CompanyID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s (role=%s)", user.Email, user.Role)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":      token,
		"user_id":    user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"user_role":  user.Role,
		"company_id": user.CompanyID,
	})
}

// GetProfile -> current user from token claims
func (uc *UserController) GetProfile(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("actor not found in context"))
		return
	}

	user, err := uc.Store.GetUserByID(actor.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"role":       user.Role,
		"company_id": user.CompanyID,
	})
}

// GetAllUsers -> admin only (enforced in the router)
func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.Store.GetUsers()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All users", users)
}
