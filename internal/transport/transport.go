package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VishalKR1202/ChukGO1/internal/entity"
	"github.com/VishalKR1202/ChukGO1/internal/transport/middleware"
)

// SuccessResponse wraps every successful payload.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse wraps every failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func InitRoutes(stationHandler *StationHandler, trainHandler *TrainHandler, bookingHandler *BookingHandler) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/stations", stationHandler.ListStations)

		trains := api.Group("/trains")
		{
			trains.GET("/search", trainHandler.SearchTrains)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.GET("/pnr/:pnr", bookingHandler.GetPNRStatus)
			bookings.POST("/pnr/:pnr/cancel", bookingHandler.CancelBooking)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// statusCode maps the domain error taxonomy onto HTTP. Anything outside the
// taxonomy is a 500; an unreachable store is a retryable 503.
func statusCode(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, entity.ErrPastDate),
		errors.Is(err, entity.ErrInvalidPNR),
		errors.Is(err, entity.ErrStationNotFound),
		errors.Is(err, entity.ErrClassNotAvailable),
		errors.Is(err, entity.ErrTooManyPassengers):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrTrainNotFound),
		errors.Is(err, entity.ErrPNRNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrAlreadyCancelled):
		return http.StatusConflict
	case errors.Is(err, entity.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusCode(err), ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}
