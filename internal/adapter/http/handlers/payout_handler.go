package handlers

import (
	"context"
	"net/http"

	"plaiz_studio/internal/adapter/http/dto/response"
	"plaiz_studio/internal/adapter/http/middleware"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase"
	"plaiz_studio/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PayoutHandler exposes the worker payout ledger. Admins mark payouts sent
// and trigger bank transfers; workers confirm receipt.

type PayoutHandler struct {
	usecase usecase.IPayoutUseCase
}

func NewPayoutHandler(uc usecase.IPayoutUseCase) *PayoutHandler {
	return &PayoutHandler{usecase: uc}
}

func (h *PayoutHandler) GetProjectPayout(c *gin.Context) {
	p, err := h.usecase.GetPayoutForProject(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, "payout", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayout(p))
}

func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	list, err := h.usecase.ListPayouts(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		respondError(c, "payout", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayouts(list))
}

// MarkAsSent godoc
// @Summary  Admin marks a payout as sent to the worker
// @Tags     payouts
// @Produce  json
// @Param    id   path      string  true  "Payout ID"
// @Success  200  {object}  response.TransitionResponse
// @Failure  403  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payouts/{id}/sent [patch]
func (h *PayoutHandler) MarkAsSent(c *gin.Context) {
	h.step(c, "sent", h.usecase.MarkAsSent)
}

// ConfirmReceipt godoc
// @Summary  Worker confirms the payout arrived
// @Tags     payouts
// @Produce  json
// @Param    id   path      string  true  "Payout ID"
// @Success  200  {object}  response.TransitionResponse
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payouts/{id}/confirm [patch]
func (h *PayoutHandler) ConfirmReceipt(c *gin.Context) {
	h.step(c, "confirm", h.usecase.ConfirmReceipt)
}

func (h *PayoutHandler) InitiateTransfer(c *gin.Context) {
	h.step(c, "transfer", h.usecase.InitiateTransfer)
}

func (h *PayoutHandler) step(
	c *gin.Context,
	name string,
	op func(ctx context.Context, s entities.Session, payoutID string) (usecase.TransitionResult, error),
) {
	payoutID := c.Param("id")
	res, err := op(c.Request.Context(), middleware.GetSession(c), payoutID)
	if err != nil {
		respondError(c, "payout", err)
		return
	}
	logger.Log.Info("[payout][handler] "+name, zap.String("payout_id", payoutID), zap.Bool("advanced", res.Advanced))
	c.JSON(http.StatusOK, response.FromTransition(res))
}
