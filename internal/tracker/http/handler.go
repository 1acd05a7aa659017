package http

import (
	"time"

	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/board"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/realtime"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the board over HTTP.
type Handler struct {
	board     *board.Board
	hub       *realtime.Hub
	log       *zap.Logger
	keepAlive time.Duration
}

// New creates a new Handler.
func New(b *board.Board, hub *realtime.Hub, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		board:     b,
		hub:       hub,
		log:       log,
		keepAlive: 15 * time.Second,
	}
}

// SetKeepAlive changes the interval of stream keep-alive comments.
func (h *Handler) SetKeepAlive(d time.Duration) {
	if d > 0 {
		h.keepAlive = d
	}
}

// Register attaches the board routes. guard runs in front of every route
// that changes board state.
func (h *Handler) Register(rg *gin.RouterGroup, guard ...gin.HandlerFunc) {
	mutate := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, guard...), handler)
	}

	rg.GET("/projects", h.ListProjects)
	rg.POST("/projects", mutate(h.CreateProject)...)
	rg.POST("/projects/:id/dragstart", h.DragStart)
	rg.POST("/projects/:id/dragend", h.DragEnd)

	rg.GET("/lists/:status", h.GetList)
	rg.POST("/lists/:status/dragover", h.DragOver)
	rg.POST("/lists/:status/dragleave", h.DragLeave)
	rg.POST("/lists/:status/drop", mutate(h.Drop)...)

	rg.GET("/stream", h.Stream)
}
