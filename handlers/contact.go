package handlers

import (
	"net/http"
	"time"

	"portfolio/database"
	"portfolio/models"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendMessage stores a visitor enquiry from the public contact form.
func SendMessage(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, subject and message are required"})
		return
	}

	now := time.Now()
	msg := models.Message{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Messages.InsertOne(ctx, msg)
	if err != nil {
		respondServer(c, "send message", err)
		return
	}

	log.Info().Str("email", req.Email).Msg("contact message received")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"id":      result.InsertedID,
	})
}
