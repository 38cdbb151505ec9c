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

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingPayload struct {
	RoomID       uint   `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "Room not found")
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusBadRequest, "Room is not available")
	case errors.Is(err, services.ErrInvalidDate):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking dates provided")
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.JSONError(c, http.StatusBadRequest, "Check-out date must be after check-in date")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "Invalid status value")
	case errors.Is(err, services.ErrNotBookingOwner):
		utils.JSONError(c, http.StatusForbidden, "Not authorized to access this booking")
	default:
		log.Printf("❌ booking operation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
	}
}

// CreateBooking handles POST /api/bookings.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := bc.Bookings.Create(actor.ID, payload.RoomID, payload.CheckInDate, payload.CheckOutDate)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings handles GET /api/bookings. Students see their own bookings,
// admins see everything.
func (bc *BookingController) GetBookings(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	bookings, err := bc.Bookings.List(actor.ID, actor.Role)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONList(c, http.StatusOK, bookings, len(bookings))
}

// GetBooking handles GET /api/bookings/:id.
func (bc *BookingController) GetBooking(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.Bookings.Get(actor.ID, actor.Role, id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpdateBooking handles PUT /api/bookings/:id.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := bc.Bookings.Update(actor.ID, actor.Role, id, patch)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking handles PUT /api/bookings/:id/cancel.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.Bookings.Cancel(actor.ID, actor.Role, id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
