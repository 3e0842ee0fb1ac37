package handlers

import (
	"net/http"

	"plaiz_studio/internal/adapter/http/dto/request"
	"plaiz_studio/internal/adapter/http/dto/response"
	"plaiz_studio/internal/adapter/http/middleware"
	"plaiz_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

// SaveBankAccount godoc
// @Summary  Worker registers or replaces the payout bank account
// @Tags     accounts
// @Accept   json
// @Produce  json
// @Param    body  body      request.BankAccountRequest  true  "Bank account"
// @Success  200   {object}  response.BankAccountResponse
// @Failure  400   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /bank-account [put]
func (h *AccountHandler) SaveBankAccount(c *gin.Context) {
	var payload request.BankAccountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	acc, err := h.usecase.SaveBankAccount(c.Request.Context(), middleware.GetSession(c), payload.ToInput())
	if err != nil {
		respondError(c, "account", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBankAccount(acc))
}

func (h *AccountHandler) GetBankAccount(c *gin.Context) {
	acc, err := h.usecase.GetBankAccount(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		respondError(c, "account", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBankAccount(acc))
}
