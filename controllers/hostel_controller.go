package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type HostelController struct {
	Hostels *services.HostelService
}

func NewHostelController(hostels *services.HostelService) *HostelController {
	return &HostelController{Hostels: hostels}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Resource not found with id of "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}

// GetHostels handles GET /api/hostels (public).
func (hc *HostelController) GetHostels(c *gin.Context) {
	hostels, err := hc.Hostels.List()
	if err != nil {
		log.Printf("❌ list hostels failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONList(c, http.StatusOK, hostels, len(hostels))
}

// GetHostel handles GET /api/hostels/:id (public).
func (hc *HostelController) GetHostel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	hostel, err := hc.Hostels.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrHostelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hostel not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hostel)
}

// CreateHostel handles POST /api/hostels (admin).
func (hc *HostelController) CreateHostel(c *gin.Context) {
	var hostel models.Hostel
	if err := c.ShouldBindJSON(&hostel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := hc.Hostels.Create(&hostel); err != nil {
		log.Printf("❌ create hostel failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hostel)
}

// UpdateHostel handles PUT /api/hostels/:id (admin).
func (hc *HostelController) UpdateHostel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	delete(patch, "id")
	delete(patch, "created_at")
	delete(patch, "updated_at")
	delete(patch, "createdAt")
	delete(patch, "updatedAt")

	hostel, err := hc.Hostels.Update(id, patch)
	if err != nil {
		if errors.Is(err, services.ErrHostelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hostel not found")
			return
		}
		log.Printf("❌ update hostel failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hostel)
}

// DeleteHostel handles DELETE /api/hostels/:id (admin).
func (hc *HostelController) DeleteHostel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := hc.Hostels.Delete(id); err != nil {
		if errors.Is(err, services.ErrHostelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hostel not found")
			return
		}
		log.Printf("❌ delete hostel failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}
