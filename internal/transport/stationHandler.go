package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VishalKR1202/ChukGO1/internal/service"
)

type StationHandler struct {
	trainService service.TrainService
}

func NewStationHandler(trainService service.TrainService) *StationHandler {
	return &StationHandler{trainService: trainService}
}

func (h *StationHandler) ListStations(c *gin.Context) {
	stations, err := h.trainService.ListStations(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    stations,
	})
}
