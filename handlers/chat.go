package handlers

import (
	"errors"
	"net/http"

	"trimly/middleware"
	"trimly/models"
	"trimly/services/assistant"
	"trimly/services/booking"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the chat-to-booking endpoint.
type ChatHandler struct {
	Assistant assistant.AssistantService
}

func NewChatHandler(svc assistant.AssistantService) *ChatHandler {
	return &ChatHandler{Assistant: svc}
}

// Chat handles one conversational turn for the authenticated shop.
func (h *ChatHandler) Chat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", "message is required")
		return
	}

	shopID := middleware.ShopID(c)
	resp, err := h.Assistant.HandleChat(c.Request.Context(), shopID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrConfigMissing):
			utils.JSONError(c, http.StatusBadRequest, "Shop configuration missing", "configure the shop profile and Gemini API key first")
		case errors.Is(err, booking.ErrAssistantUnavailable):
			utils.JSONError(c, http.StatusBadGateway, "Assistant unavailable", "the assistant could not be reached, please try again")
		default:
			logger.Error("Chat turn failed", zap.String("shopID", shopID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "chat turn could not be completed")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
