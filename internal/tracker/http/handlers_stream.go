package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
	"github.com/gin-gonic/gin"
)

// Stream pushes a snapshot to the client after every board change using
// Server-Sent Events. The current state is sent first.
func (h *Handler) Stream(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	client, initial := h.hub.Connect()
	defer client.Close()

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering
	c.Status(http.StatusOK)

	writeSnapshot(c, initial)
	flusher.Flush()

	ctx := c.Request.Context()
	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case projects := <-client.Updates():
			writeSnapshot(c, projects)
			flusher.Flush()
		}
	}
}

func writeSnapshot(c *gin.Context, projects []domain.Project) {
	data, _ := json.Marshal(gin.H{"projects": projects})
	fmt.Fprintf(c.Writer, "event: snapshot\ndata: %s\n\n", data)
}
