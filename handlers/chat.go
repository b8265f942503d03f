package handlers

import (
	"net/http"

	"sushichat/models"
	"sushichat/services/chat"
	"sushichat/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewChatHandler handles one chat turn: validate the request, run the
// engine, return the turn result.
func NewChatHandler(engine chat.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		requestID := uuid.NewString()

		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("invalid chat request",
				zap.String("requestID", requestID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Mensagem não fornecida"})
			return
		}

		result := engine.Respond(c.Request.Context(), req)

		logger.Info("chat turn",
			zap.String("requestID", requestID),
			zap.String("intent", result.Intent),
			zap.Float64("probability", result.Probability),
			zap.Int("sentences", result.SentencesProcessed),
			zap.Bool("awaitingSelection", result.AwaitingDishSelection))
		c.JSON(http.StatusOK, result)
	}
}
