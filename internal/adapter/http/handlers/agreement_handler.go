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

type AgreementHandler struct {
	usecase usecase.IAgreementUseCase
}

func NewAgreementHandler(uc usecase.IAgreementUseCase) *AgreementHandler {
	return &AgreementHandler{usecase: uc}
}

// ProposePrice godoc
// @Summary  Worker proposes a price (naira)
// @Tags     agreements
// @Accept   json
// @Produce  json
// @Param    id    path      string                        true  "Project ID"
// @Param    body  body      request.ProposePriceRequest  true  "Proposal"
// @Success  201   {object}  response.TransitionResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /projects/{id}/agreements [post]
func (h *AgreementHandler) ProposePrice(c *gin.Context) {
	var payload request.ProposePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	projectID := c.Param("id")
	res, err := h.usecase.ProposePrice(c.Request.Context(), middleware.GetSession(c), projectID, payload.ToInput())
	if err != nil {
		respondError(c, "agreement", err)
		return
	}
	logger.Log.Info("[agreement][handler] proposed", zap.String("project_id", projectID), zap.Int64("amount", payload.ToInput().Amount))
	c.JSON(http.StatusCreated, response.FromTransition(res))
}

func (h *AgreementHandler) GetActiveAgreement(c *gin.Context) {
	a, err := h.usecase.GetActiveAgreement(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, "agreement", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(a))
}

// AcceptPrice godoc
// @Summary      Accept the active agreement
// @Description  The project moves to pending_down_payment once both parties accepted.
// @Tags         agreements
// @Produce      json
// @Param        id   path      string  true  "Agreement ID"
// @Success      200  {object}  response.TransitionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /agreements/{id}/accept [patch]
func (h *AgreementHandler) AcceptPrice(c *gin.Context) {
	h.decide(c, h.usecase.AcceptPrice)
}

func (h *AgreementHandler) DeclinePrice(c *gin.Context) {
	h.decide(c, h.usecase.DeclinePrice)
}

func (h *AgreementHandler) decide(
	c *gin.Context,
	op func(ctx context.Context, s entities.Session, agreementID string) (usecase.TransitionResult, error),
) {
	res, err := op(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, "agreement", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(res))
}
