package api

import (
	"errors"
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qrys queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// @Summary Create reservation
// @Description Allocate the smallest free table for the party and confirm the booking
// @Tags reservations
// @Accept json
// @Produce json
// @Param slug path string true "Venue slug"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venues/{slug}/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snap, err := h.commands.Allocate(c.Request.Context(), req.ToParams(c.Param("slug")))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		case errors.Is(err, commands.ErrPastStartTime):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Reservation start time is in the past",
			})
		case errors.Is(err, commands.ErrOutsideOperatingHours):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Requested time is outside operating hours",
			})
		case errors.Is(err, commands.ErrDoubleBooking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Guest already has an overlapping booking at this venue",
			})
		case errors.Is(err, commands.ErrNoCapacity):
			c.JSON(http.StatusConflict, gin.H{
				"error":       "No table seats a party of this size",
				"canWaitlist": true,
			})
		case errors.Is(err, commands.ErrNoAvailability):
			c.JSON(http.StatusConflict, gin.H{
				"error":       "No table is free at the requested time",
				"canWaitlist": true,
			})
		case errors.Is(err, commands.ErrAllocationConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Table was taken while confirming, please retry",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingSnapshot(snap))
}

// @Summary Cancel reservation
// @Description Cancel a booking by reference; cancelling twice is a no-op
// @Tags reservations
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{reference} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	err := h.commands.Cancel(c.Request.Context(), c.Param("reference"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "cancelled",
	})
}

// @Summary Modify reservation
// @Description Move a booking to a new time, size or duration; the table is re-chosen
// @Tags reservations
// @Accept json
// @Produce json
// @Param reference path string true "Booking reference"
// @Param request body reqdto.ModifyReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{reference} [patch]
func (h *ReservationHandler) ModifyReservation(c *gin.Context) {
	var req reqdto.ModifyReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snap, err := h.commands.Modify(c.Request.Context(), req.ToParams(c.Param("reference")))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrNotModifiable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cancelled reservations cannot be modified",
			})
		case errors.Is(err, commands.ErrNoCapacity):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No table seats a party of this size",
			})
		case errors.Is(err, commands.ErrNoAvailability):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No table is free at the requested time",
			})
		case errors.Is(err, commands.ErrAllocationConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Table was taken while confirming, please retry",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snap))
}

// @Summary Check availability
// @Description Dry-run the table search for a time without booking anything
// @Tags reservations
// @Produce json
// @Param slug path string true "Venue slug"
// @Param party_size query int true "Party size"
// @Param start query string true "Requested start (RFC3339)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{slug}/availability [get]
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	view, err := h.queries.CheckAvailability(c.Request.Context(), q.ToParams(c.Param("slug")))
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Available slots
// @Description List every bookable start time for a day on the slot grid
// @Tags reservations
// @Produce json
// @Param slug path string true "Venue slug"
// @Param party_size query int true "Party size"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{slug}/slots [get]
func (h *ReservationHandler) AvailableSlots(c *gin.Context) {
	var q reqdto.SlotsQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	view, err := h.queries.AvailableSlots(c.Request.Context(), q.ToParams(c.Param("slug")))
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotsView(view))
}

// @Summary List reservations for a day
// @Description All bookings of a venue on the given date, earliest first
// @Tags reservations
// @Produce json
// @Param slug path string true "Venue slug"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{slug}/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	views, err := h.queries.ListByVenueAndDate(c.Request.Context(), c.Param("slug"), date)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	response := make([]*resdto.ReservationDetailResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromReservationView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get reservation
// @Description Look up one booking of a venue by its reference
// @Tags reservations
// @Produce json
// @Param slug path string true "Venue slug"
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.ReservationDetailResponse
// @Failure 404 {object} map[string]string
// @Router /venues/{slug}/reservations/{reference} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	view, err := h.queries.ByReference(c.Request.Context(), c.Param("slug"), c.Param("reference"))
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
	case errors.Is(err, queries.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, queries.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
