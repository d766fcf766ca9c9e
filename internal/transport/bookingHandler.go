package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VishalKR1202/ChukGO1/internal/service"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CancelBookingRequest carries the contact email the booking was made with.
type CancelBookingRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	resp, err := h.bookingService.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Data:    resp,
	})
}

func (h *BookingHandler) GetPNRStatus(c *gin.Context) {
	pnr := c.Param("pnr")

	resp, err := h.bookingService.GetPNRStatus(c.Request.Context(), pnr)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    resp,
	})
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	pnr := c.Param("pnr")

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	resp, err := h.bookingService.CancelBooking(c.Request.Context(), pnr, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    resp,
	})
}
