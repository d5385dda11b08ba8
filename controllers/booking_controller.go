package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct{ Svc *services.BookingService }

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Svc: svc}
}

// GET /api/cafes/:cafeId/slots?date=YYYY-MM-DD
func (h *BookingController) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		resp.BadRequest(c, "date is required")
		return
	}

	slots, err := h.Svc.Slots(c.Param("cafeId"), date)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"slots": slots})
}

// GET /api/cafes/:cafeId/tables?date=&time=
func (h *BookingController) Tables(c *gin.Context) {
	tables, err := h.Svc.Tables(c.Param("cafeId"), c.Query("date"), c.Query("time"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"tables": tables})
}

// POST /api/bookings
func (h *BookingController) Book(c *gin.Context) {
	key, identity, ok := cartKey(c)
	if !ok {
		return
	}

	var req services.BookTableIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Name == "" {
		req.Name = identity.DisplayName
	}

	booking, err := h.Svc.Book(key, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlotTaken):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrTableNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrTableTooSmall),
			errors.Is(err, services.ErrUnknownSlot),
			errors.Is(err, services.ErrMissingBooking):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"booking": booking})
}

// GET /api/bookings
func (h *BookingController) ListForMe(c *gin.Context) {
	key, _, ok := cartKey(c)
	if !ok {
		return
	}

	bookings, err := h.Svc.ListForUser(key)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"bookings": bookings})
}
