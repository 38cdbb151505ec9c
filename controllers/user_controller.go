package controllers

import (
	"errors"
	"log"
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

type registerPayload struct {
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	PRN       string `json:"prn" binding:"required"`
	Role      string `json:"role"`
}

type loginPayload struct {
	Email    string `json:"email"`
	PRN      string `json:"prn"`
	Password string `json:"password" binding:"required"`
}

type profilePayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	PRN       string `json:"prn"`
	Password  string `json:"password"`
}

// userWithToken builds the auth response body: the user's public fields
// plus a fresh bearer token.
func userWithToken(user *models.User) (gin.H, error) {
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
		"prn":       user.PRN,
		"role":      user.Role,
		"token":     token,
	}, nil
}

// Register handles POST /api/users/register.
func (uc *UserController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := uc.Users.Register(services.RegisterInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  payload.Password,
		PRN:       payload.PRN,
		Role:      payload.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			utils.JSONError(c, http.StatusBadRequest, "User already exists")
		case errors.Is(err, services.ErrPRNTaken):
			utils.JSONError(c, http.StatusBadRequest, "PRN already registered")
		default:
			log.Printf("❌ register failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	data, err := userWithToken(user)
	if err != nil {
		log.Printf("❌ token generation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, data)
}

// Login handles POST /api/users/login; either email or PRN identifies the user.
func (uc *UserController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Email == "" && payload.PRN == "" {
		utils.JSONError(c, http.StatusBadRequest, "Provide email or PRN and password")
		return
	}

	user, err := uc.Users.Authenticate(payload.Email, payload.PRN, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("❌ login failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	data, err := userWithToken(user)
	if err != nil {
		log.Printf("❌ token generation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, data)
}

// GetProfile handles GET /api/users/profile.
func (uc *UserController) GetProfile(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	user, err := uc.Users.GetByID(actor.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/users/profile.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var payload profilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := uc.Users.UpdateProfile(actor.ID, services.ProfileUpdateInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		PRN:       payload.PRN,
		Password:  payload.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrPRNTaken):
			utils.JSONError(c, http.StatusBadRequest, "Duplicate field value entered")
		default:
			log.Printf("❌ profile update failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	data, err := userWithToken(user)
	if err != nil {
		log.Printf("❌ token generation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, data)
}
