package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDailyReport handles the GET /api/reports/daily request. The report carries
// lifetime totals per machine, summed over every recorded sample; the "daily" name
// is kept from the original intake flow.
func (h *Handler) GetDailyReport(c *gin.Context) {
	summaries, err := h.store.MachineSummaries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}
