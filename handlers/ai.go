package handlers

import (
	"errors"
	"net/http"

	"medibook/models"
	ai "medibook/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the symptom suggestion side panel. Its errors are rendered
// in-panel by the client, so responses carry the message inline instead of
// the transient-notification shape used elsewhere.
type AIHandler struct {
	svc    ai.SuggestionService
	logger *zap.Logger
}

func NewAIHandler(svc ai.SuggestionService, logger *zap.Logger) *AIHandler {
	return &AIHandler{svc: svc, logger: logger}
}

func (h *AIHandler) Suggest(c *gin.Context) {
	var req models.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	suggestion, err := h.svc.Suggest(c.Request.Context(), req.Symptoms)
	if err != nil {
		if errors.Is(err, ai.ErrSymptomsTooShort) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "field": "symptoms"})
			return
		}
		h.logger.Error("symptom suggestion failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not get a suggestion right now, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}
