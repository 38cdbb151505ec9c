package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

type roomPayload struct {
	HostelID   uint     `json:"hostelId" binding:"required"`
	RoomNumber string   `json:"roomNumber" binding:"required"`
	Floor      int      `json:"floor" binding:"gte=0"`
	Type       string   `json:"type" binding:"required,oneof=Single Double Triple Quad Dormitory"`
	Capacity   int      `json:"capacity" binding:"required,gte=1"`
	Price      float64  `json:"price" binding:"gte=0"`
	Amenities  []string `json:"amenities"`
}

// GetRooms handles GET /api/rooms (public). Accepts ?hostel=<id>.
func (rc *RoomController) GetRooms(c *gin.Context) {
	var hostelID uint
	if raw := c.Query("hostel"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid hostel filter")
			return
		}
		hostelID = uint(id)
	}

	rooms, err := rc.Rooms.List(hostelID)
	if err != nil {
		log.Printf("❌ list rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONList(c, http.StatusOK, rooms, len(rooms))
}

// GetAvailableRooms handles GET /api/rooms/available (public).
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := rc.Rooms.ListAvailable()
	if err != nil {
		log.Printf("❌ list available rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONList(c, http.StatusOK, rooms, len(rooms))
}

// GetRoom handles GET /api/rooms/:id (public).
func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	room, err := rc.Rooms.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// CreateRoom handles POST /api/rooms (admin).
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	amenities, _ := json.Marshal(payload.Amenities)
	room := models.Room{
		HostelID:    payload.HostelID,
		RoomNumber:  payload.RoomNumber,
		Floor:       payload.Floor,
		Type:        payload.Type,
		Capacity:    payload.Capacity,
		Price:       payload.Price,
		Amenities:   datatypes.JSON(amenities),
		IsAvailable: true,
	}

	if err := rc.Rooms.Create(&room); err != nil {
		switch {
		case errors.Is(err, services.ErrHostelNotFound):
			utils.JSONError(c, http.StatusNotFound, "Hostel not found")
		case errors.Is(err, services.ErrRoomNumberTaken):
			utils.JSONError(c, http.StatusBadRequest, "Room number already exists in this hostel")
		default:
			log.Printf("❌ create room failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/rooms/:id (admin).
func (rc *RoomController) UpdateRoom(c *gin.Context) {
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

	room, err := rc.Rooms.Update(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "Room not found")
		case errors.Is(err, services.ErrRoomNumberTaken):
			utils.JSONError(c, http.StatusBadRequest, "Room number already exists in this hostel")
		default:
			log.Printf("❌ update room failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:id (admin).
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		log.Printf("❌ delete room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}
