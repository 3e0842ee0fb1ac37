package handlers

import (
	"net/http"

	"plaiz_studio/internal/adapter/http/dto/response"
	"plaiz_studio/internal/adapter/http/middleware"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReconcileHandler lets an admin replay the lifecycle rules for one project
// or for every open project.

type ReconcileHandler struct {
	usecase usecase.IReconcileUseCase
}

func NewReconcileHandler(uc usecase.IReconcileUseCase) *ReconcileHandler {
	return &ReconcileHandler{usecase: uc}
}

func (h *ReconcileHandler) ReconcileProject(c *gin.Context) {
	if middleware.GetSession(c).Role != entities.RoleAdmin {
		respondError(c, "reconcile", usecase.ErrForbidden)
		return
	}
	res, err := h.usecase.ReconcileProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "reconcile", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(res))
}

// ReconcileAll godoc
// @Summary  Admin sweep over every open project
// @Tags     admin
// @Produce  json
// @Success  200  {object}  usecase.ReconcileReport
// @Failure  403  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /admin/reconcile [post]
func (h *ReconcileHandler) ReconcileAll(c *gin.Context) {
	if middleware.GetSession(c).Role != entities.RoleAdmin {
		respondError(c, "reconcile", usecase.ErrForbidden)
		return
	}
	report, err := h.usecase.ReconcileAll(c.Request.Context())
	if err != nil {
		respondError(c, "reconcile", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
