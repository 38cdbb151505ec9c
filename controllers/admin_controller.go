package controllers

import (
	"errors"
	"log"
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{Admin: admin}
}

type rolePayload struct {
	Role string `json:"role" binding:"required"`
}

// GetUsers handles GET /api/admin/users. Passwords never serialize.
func (ac *AdminController) GetUsers(c *gin.Context) {
	users, err := ac.Admin.ListUsers()
	if err != nil {
		log.Printf("❌ list users failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONList(c, http.StatusOK, users, len(users))
}

// UpdateUserRole handles PUT /api/admin/users/:id/role.
func (ac *AdminController) UpdateUserRole(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload rolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide a valid role (student or admin)")
		return
	}

	user, err := ac.Admin.UpdateUserRole(id, payload.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			utils.JSONError(c, http.StatusBadRequest, "Please provide a valid role (student or admin)")
		case errors.Is(err, services.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, "User not found")
		default:
			log.Printf("❌ role update failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/admin/users/:id. Admins cannot delete
// their own account.
func (ac *AdminController) DeleteUser(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ac.Admin.DeleteUser(actor.ID, id); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfDeletion):
			utils.JSONError(c, http.StatusBadRequest, "You cannot delete your own account")
		case errors.Is(err, services.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, "User not found")
		default:
			log.Printf("❌ delete user failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}

// GetDashboard handles GET /api/admin/dashboard.
func (ac *AdminController) GetDashboard(c *gin.Context) {
	stats, err := ac.Admin.Dashboard()
	if err != nil {
		log.Printf("❌ dashboard aggregation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
