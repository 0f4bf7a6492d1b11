package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/services"
)

// ReservationController handles table bookings.
type ReservationController struct {
	reservations services.ReservationService
}

func NewReservationController(reservations services.ReservationService) *ReservationController {
	return &ReservationController{reservations: reservations}
}

type reservationRequest struct {
	Date         string `json:"date" binding:"required"`
	TimeSlot     string `json:"time_slot" binding:"required"`
	PartySize    int    `json:"party_size" binding:"required"`
	ContactName  string `json:"contact_name" binding:"required"`
	ContactPhone string `json:"contact_phone" binding:"required"`
	Notes        string `json:"notes"`
}

// CreateReservation godoc
// @Summary Book a table
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body reservationRequest true "Booking details"
// @Success 201 {object} models.Reservation
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/reservations [post]
func (rc *ReservationController) CreateReservation(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	var req reservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	reservation, err := rc.reservations.Create(userID, services.ReservationInput{
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
		PartySize:    req.PartySize,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Notes:        req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReservationDate),
			errors.Is(err, services.ErrReservationInPast),
			errors.Is(err, services.ErrInvalidTimeSlot),
			errors.Is(err, services.ErrInvalidPartySize),
			errors.Is(err, services.ErrContactRequired):
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		default:
			ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create reservation"))
		}
		return
	}

	ctx.JSON(http.StatusCreated, reservation)
}

// ListReservations godoc
// @Summary List the authenticated user's reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} models.Reservation
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/reservations [get]
func (rc *ReservationController) ListReservations(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	reservations, err := rc.reservations.GetByUser(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve reservations"))
		return
	}
	ctx.JSON(http.StatusOK, reservations)
}

// UpdateReservationStatus godoc
// @Summary Change a reservation's status
// @Description Staff-only endpoint for confirming, completing or cancelling bookings
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param status body statusUpdateRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/staff/reservations/{id}/status [patch]
func (rc *ReservationController) UpdateReservationStatus(ctx *gin.Context) {
	reservationID := ctx.Param("id")

	var req statusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	err := rc.reservations.UpdateStatus(reservationID, models.ReservationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReservationStatus):
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidStatus, "Unknown reservation status"))
		case errors.Is(err, services.ErrReservationNotFound):
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrReservationNotFound, "Reservation not found"))
		default:
			ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update reservation"))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": reservationID, "status": req.Status})
}
