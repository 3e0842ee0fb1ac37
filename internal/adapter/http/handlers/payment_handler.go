package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"plaiz_studio/internal/adapter/http/dto/request"
	"plaiz_studio/internal/adapter/http/dto/response"
	"plaiz_studio/internal/adapter/http/middleware"
	"plaiz_studio/internal/usecase"
	"plaiz_studio/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler handles HTTP requests for deposits and final payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RecordPayment godoc
// @Summary      Record a confirmed payment for a phase
// @Description  A confirmed payment matching the agreed amount advances the project.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Project ID"
// @Param        body  body      request.RecordPaymentRequest  true  "Payment"
// @Success      201   {object}  response.TransitionResponse
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	projectID := c.Param("id")
	res, err := h.usecase.RecordPayment(c.Request.Context(), middleware.GetSession(c), projectID, payload.ToInput())
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	logger.Log.Info("[payment][handler] recorded",
		zap.String("project_id", projectID),
		zap.String("phase", payload.Phase),
		zap.Bool("advanced", res.Advanced),
	)
	c.JSON(http.StatusCreated, response.FromTransition(res))
}

// Checkout godoc
// @Summary      Charge a phase through Mercado Pago
// @Description  `mp_payload` is forwarded to the provider; amount and reference are set by the service.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Project ID"
// @Param        body  body      request.CheckoutRequest  true  "Checkout"
// @Success      201   {object}  response.TransitionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id}/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if !validProviderPayload(payload.MPPayload) {
		respondInvalidPayload(c)
		return
	}

	projectID := c.Param("id")
	logger.Log.Info("[payment][handler] checkout start", zap.String("project_id", projectID), zap.String("phase", payload.Phase))
	res, err := h.usecase.Checkout(c.Request.Context(), middleware.GetSession(c), projectID, payload.ToInput())
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTransition(res))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	list, err := h.usecase.ListPayments(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(list))
}

// validProviderPayload accepts an absent payload or a JSON object. An explicit
// null, an array or a scalar is rejected before it reaches the gateway.
func validProviderPayload(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return true
	}
	return strings.HasPrefix(trimmed, "{") && json.Valid(raw)
}
