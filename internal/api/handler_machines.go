package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"manufac-asset-backend/internal/model"
)

type createMachineRequest struct {
	Name   string              `json:"name"`
	Status model.MachineStatus `json:"status"`
}

// CreateMachine handles the POST /api/machines request.
func (h *Handler) CreateMachine(c *gin.Context) {
	var req createMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "machine name cannot be empty"})
		return
	}
	if !model.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of Running, Idle, Maintenance"})
		return
	}

	machine := model.Machine{
		Name:   req.Name,
		Status: req.Status,
	}
	if err := h.store.CreateMachine(c.Request.Context(), &machine); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, machine)
}

// ListMachines handles the GET /api/machines request.
func (h *Handler) ListMachines(c *gin.Context) {
	machines, err := h.store.ListMachines(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, machines)
}
