package handlers

import (
	"net/http"

	"plaiz_studio/internal/adapter/http/dto/request"
	"plaiz_studio/internal/adapter/http/dto/response"
	"plaiz_studio/internal/adapter/http/middleware"
	"plaiz_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ConversationHandler serves the project chat and the caller's notification
// inbox.

type ConversationHandler struct {
	usecase usecase.IConversationUseCase
}

func NewConversationHandler(uc usecase.IConversationUseCase) *ConversationHandler {
	return &ConversationHandler{usecase: uc}
}

func (h *ConversationHandler) SendMessage(c *gin.Context) {
	var payload request.MessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	msg, err := h.usecase.SendMessage(c.Request.Context(), middleware.GetSession(c), c.Param("id"), payload.Body)
	if err != nil {
		respondError(c, "conversation", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMessage(msg))
}

func (h *ConversationHandler) ListMessages(c *gin.Context) {
	list, err := h.usecase.ListMessages(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, "conversation", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMessages(list))
}

func (h *ConversationHandler) ListNotifications(c *gin.Context) {
	list, err := h.usecase.ListNotifications(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		respondError(c, "notification", err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(list))
}

func (h *ConversationHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.usecase.MarkNotificationRead(c.Request.Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		respondError(c, "notification", err)
		return
	}
	c.Status(http.StatusNoContent)
}
