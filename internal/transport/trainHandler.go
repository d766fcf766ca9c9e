package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VishalKR1202/ChukGO1/internal/service"
)

type TrainHandler struct {
	trainService service.TrainService
}

func NewTrainHandler(trainService service.TrainService) *TrainHandler {
	return &TrainHandler{trainService: trainService}
}

func (h *TrainHandler) SearchTrains(c *gin.Context) {
	var req service.SearchTrainsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	results, err := h.trainService.SearchTrains(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    results,
	})
}
