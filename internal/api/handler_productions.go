package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// productionResponse mirrors the production-data table: one row per sample,
// with a nil end time rendered as a still-running session.
type productionResponse struct {
	ID        uint       `json:"id"`
	MachineID uint       `json:"machineId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Running   bool       `json:"running"`
	RunTime   float64    `json:"runTimeHours"`
	Quantity  int        `json:"productionQuantity"`
}

// ListProductions handles the GET /api/productions request.
func (h *Handler) ListProductions(c *gin.Context) {
	runs, err := h.store.ListProductionRuns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]productionResponse, 0, len(runs))
	for _, run := range runs {
		response = append(response, productionResponse{
			ID:        run.ID,
			MachineID: run.MachineID,
			StartTime: run.StartTime,
			EndTime:   run.EndTime,
			Running:   run.EndTime == nil,
			RunTime:   run.RunTime,
			Quantity:  run.Quantity,
		})
	}
	c.JSON(http.StatusOK, response)
}
