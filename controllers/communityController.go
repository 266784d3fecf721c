package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FaithPortal/models"
	"github.com/FaithPortal/services"
)

// Subscribe records a newsletter sign-up and sends the welcome email in the
// background so a slow mail provider never blocks the response.
func Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid email is required", "details": err.Error()})
		return
	}

	id, err := contentService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, err, "Subscriber not found")
		return
	}

	if emailService := services.GetEmailService(); emailService != nil {
		go func() {
			if err := emailService.SendSubscriberWelcome(req.Email); err != nil {
				log.Println("welcome email not sent:", err)
			}
		}()
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Subscribed successfully"})
}

// CreatePrayerRequest stores a prayer or counselling submission and alerts
// the ministry team by email.
func CreatePrayerRequest(c *gin.Context) {
	var payload models.PrayerRequestCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := contentService.CreatePrayerRequest(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err, "Prayer request not found")
		return
	}

	if emailService := services.GetEmailService(); emailService != nil {
		name := payload.Name
		if name == "" {
			name = "Anonymous"
		}
		alert := models.PrayerRequest{
			ID:           id,
			Name:         name,
			Email:        payload.Email,
			Request_Type: payload.Request_Type,
			Message:      payload.Message,
		}
		go func() {
			if err := emailService.SendPrayerRequestAlert(alert); err != nil {
				log.Println("prayer request alert not sent:", err)
			}
		}()
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Your request has been received"})
}
