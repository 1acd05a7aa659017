package http

import (
	"net/http"

	"github.com/GoSim-25-26J-441/project-tracker/internal/logging"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/board"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/dragdrop"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DragStart begins dragging a card and returns the data to carry.
func (h *Handler) DragStart(c *gin.Context) {
	p, err := h.board.Store().Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	dt := h.board.Drag().DragStart(p)
	c.JSON(http.StatusOK, gin.H{"ok": true, "data_transfer": dt})
}

// DragEnd clears the drag state of a card. It never changes the board.
func (h *Handler) DragEnd(c *gin.Context) {
	h.board.Drag().DragEnd(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// DragOver reports whether the list accepts the drag described in the body.
func (h *Handler) DragOver(c *gin.Context) {
	list, ok := h.listFromParam(c)
	if !ok {
		return
	}

	var dt dragdrop.DataTransfer
	if err := c.ShouldBindJSON(&dt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	accepted := list.Target().DragOver(dt)
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"accepted":  accepted,
		"droppable": list.Target().Droppable(),
	})
}

func (h *Handler) DragLeave(c *gin.Context) {
	list, ok := h.listFromParam(c)
	if !ok {
		return
	}
	list.Target().DragLeave()
	c.Status(http.StatusNoContent)
}

// Drop moves the dragged project into the list. Unknown or malformed
// payloads are ignored and still answered with 204.
func (h *Handler) Drop(c *gin.Context) {
	list, ok := h.listFromParam(c)
	if !ok {
		return
	}

	var dt dragdrop.DataTransfer
	if err := c.ShouldBindJSON(&dt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if list.Target().Drop(dt) {
		logging.For(c.Request.Context(), h.log).LogInfo("drop", "project moved",
			zap.String("status", string(list.Status())))
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listFromParam(c *gin.Context) (*board.ProjectList, bool) {
	status, err := domain.ParseStatus(c.Param("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid status"})
		return nil, false
	}
	list := h.board.List(status)
	if list == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "list not found"})
		return nil, false
	}
	return list, true
}
