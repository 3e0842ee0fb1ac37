package handlers

import (
	"context"
	"net/http"

	"plaiz_studio/internal/adapter/http/dto/request"
	"plaiz_studio/internal/adapter/http/dto/response"
	"plaiz_studio/internal/adapter/http/middleware"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase"
	"plaiz_studio/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProjectHandler handles HTTP requests for projects and the transitions the
// participants drive directly.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// CreateProject godoc
// @Summary      Create a project request
// @Description  Client submits a brief; the project is auto-assigned when a worker matches.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      request.ProjectRequest  true  "Project brief"
// @Success      201   {object}  response.TransitionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	s := middleware.GetSession(c)
	res, err := h.usecase.CreateProject(c.Request.Context(), s, payload.ToInput())
	if err != nil {
		respondError(c, "project", err)
		return
	}
	logger.Log.Info("[project][handler] created", zap.String("project_id", res.Project.ID), zap.String("status", string(res.Project.Status)))

	c.JSON(http.StatusCreated, response.FromTransition(res))
}

// ListProjects godoc
// @Summary  List the caller's projects, optionally by dashboard group
// @Tags     projects
// @Produce  json
// @Param    group  query     string  false  "pending | in_progress | review | completed | flagged"
// @Success  200    {array}   response.ProjectResponse
// @Security Bearer
// @Router   /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), middleware.GetSession(c), c.Query("group"))
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(list))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) AssignWorker(c *gin.Context) {
	var payload request.AssignWorkerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	res, err := h.usecase.AssignWorker(c.Request.Context(), middleware.GetSession(c), c.Param("id"), payload.WorkerID)
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(res))
}

func (h *ProjectHandler) OpenNegotiation(c *gin.Context) {
	h.transition(c, h.usecase.OpenNegotiation)
}

// ApproveProject godoc
// @Summary  Client approves the delivered work
// @Tags     projects
// @Produce  json
// @Param    id   path      string  true  "Project ID"
// @Success  200  {object}  response.TransitionResponse
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /projects/{id}/approve [patch]
func (h *ProjectHandler) ApproveProject(c *gin.Context) {
	h.transition(c, h.usecase.Approve)
}

func (h *ProjectHandler) CancelProject(c *gin.Context) {
	h.moderate(c, h.usecase.Cancel)
}

func (h *ProjectHandler) FlagProject(c *gin.Context) {
	h.moderate(c, h.usecase.Flag)
}

func (h *ProjectHandler) transition(
	c *gin.Context,
	op func(ctx context.Context, s entities.Session, projectID string) (usecase.TransitionResult, error),
) {
	res, err := op(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(res))
}

func (h *ProjectHandler) moderate(
	c *gin.Context,
	op func(ctx context.Context, s entities.Session, projectID, reason string) (usecase.TransitionResult, error),
) {
	var payload request.ReasonRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondInvalidPayload(c)
			return
		}
	}
	res, err := op(c.Request.Context(), middleware.GetSession(c), c.Param("id"), payload.Reason)
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(res))
}
