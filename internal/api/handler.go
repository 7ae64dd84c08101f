package api

import (
	"manufac-asset-backend/internal/monitor"
	"manufac-asset-backend/internal/store"

	"github.com/SherClockHolmes/webpush-go"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	monitor *monitor.Service
	webpush *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, mon *monitor.Service, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:   s,
		monitor: mon,
		webpush: webpushOptions,
	}
}
