package controllers

import (
	"fortumars-mart/models"
	"fortumars-mart/services"
	"fortumars-mart/store"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	App    *store.Controller
	Gemini *services.GeminiService
}

// @Summary Chat with the shopping assistant
// @Description Answers grounded in the current catalog and cart; failures degrade to a fixed apology, never an error
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Conversation so far"
// @Success 200 {object} models.Response
// @Router /assistant/chat [post]
func (ctrl *AssistantController) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	reply := ctrl.Gemini.Advise(c.Request.Context(), req.History, ctrl.App.Catalog(), ctrl.App.CartLines())
	c.JSON(200, models.Response{Success: true, Message: "Reply generated", Data: models.ChatMessage{Role: "assistant", Content: reply}})
}

// @Summary Generate a product image (admin)
// @Description Returns an inline image as a data URL; failures are surfaced verbatim
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body models.ImageRequest true "Image prompt"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /admin/assistant/image [post]
func (ctrl *AssistantController) GenerateImage(c *gin.Context) {
	var req models.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	image, err := ctrl.Gemini.GenerateImage(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(502, models.ErrorResponse{Success: false, Message: "Image generation failed", Error: err.Error()})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Image generated", Data: gin.H{"image": image}})
}
