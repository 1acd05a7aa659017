package http

import (
	"errors"
	"net/http"

	"github.com/GoSim-25-26J-441/project-tracker/internal/logging"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/validation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateProject validates a submitted proposal and adds it to the board.
func (h *Handler) CreateProject(c *gin.Context) {
	lg := logging.For(c.Request.Context(), h.log)

	var in validation.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		lg.LogWarn("create_project", "invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": validation.Message})
		return
	}

	if err := in.Validate(); err != nil {
		var inputErr *validation.InputError
		if errors.As(err, &inputErr) {
			lg.LogInfo("create_project", "rejected submission", zap.Strings("fields", inputErr.Fields()))
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":         false,
				"error":      validation.Message,
				"violations": inputErr.Violations,
			})
			return
		}
		lg.LogError("create_project", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to validate project"})
		return
	}

	p := h.board.Store().AddProject(in.Title, in.Description, in.People)
	lg.LogInfo("create_project", "project created", zap.String("project_id", p.ID))

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

// ListProjects returns the current snapshot, optionally filtered by ?status=.
func (h *Handler) ListProjects(c *gin.Context) {
	projects := h.board.Store().Snapshot()

	if raw := c.Query("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid status"})
			return
		}
		projects = domain.FilterByStatus(projects, status)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

// GetList returns the rendered view of one list.
func (h *Handler) GetList(c *gin.Context) {
	list, ok := h.listFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "list": list.View()})
}
