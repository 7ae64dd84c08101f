package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"manufac-asset-backend/internal/monitor"
	"manufac-asset-backend/internal/store"
)

func machineIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid machine ID"})
		return 0, false
	}
	return uint(id), true
}

// StartMonitoring handles the POST /api/machines/:id/monitoring/start request.
func (h *Handler) StartMonitoring(c *gin.Context) {
	machineID, ok := machineIDParam(c)
	if !ok {
		return
	}

	sessionID, err := h.monitor.Start(c.Request.Context(), machineID)
	switch {
	case errors.Is(err, store.ErrMachineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "machine not found"})
	case errors.Is(err, monitor.ErrAlreadyMonitoring):
		c.JSON(http.StatusConflict, gin.H{"error": "machine is already being monitored"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusAccepted, gin.H{
			"machineId": machineID,
			"sessionId": sessionID,
		})
	}
}

// StopMonitoring handles the POST /api/machines/:id/monitoring/stop request.
func (h *Handler) StopMonitoring(c *gin.Context) {
	machineID, ok := machineIDParam(c)
	if !ok {
		return
	}

	err := h.monitor.Stop(c.Request.Context(), machineID)
	switch {
	case errors.Is(err, monitor.ErrNotMonitored):
		c.JSON(http.StatusConflict, gin.H{"warning": "this machine is not currently being monitored"})
	case errors.Is(err, store.ErrMachineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "machine not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"machineId": machineID, "status": "Idle"})
	}
}
