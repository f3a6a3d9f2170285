// internal/handlers/events.go
package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/tiendita/backend/internal/realtime"
)

// EventsHandler streams hub events to clients over server-sent events,
// replacing a per-page websocket with a plain HTTP feed.
type EventsHandler struct {
	hub *realtime.Hub
}

func NewEventsHandler(hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// GET /events
func (h *EventsHandler) Stream(c *gin.Context) {
	ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(ch)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(event.Type, event.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
