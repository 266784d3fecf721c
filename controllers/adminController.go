package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FaithPortal/models"
	"github.com/FaithPortal/store"
)

// writeError maps a failed mutation onto a status the admin console can act
// on: NotFound, PermissionDenied, and Unavailable must stay distinguishable
// so forms do not lose input behind a generic network error.
func writeError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, store.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Write rejected by store access rules"})
	case errors.Is(err, store.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Content store is unavailable"})
	default:
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Write failed"})
	}
}

func CreateArticle(c *gin.Context) {
	var payload models.ArticleCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := contentService.CreateArticle(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err, "Article not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func UpdateArticle(c *gin.Context) {
	var payload models.ArticleUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("article_id")
	if err := contentService.UpdateArticle(c.Request.Context(), id, payload); err != nil {
		writeError(c, err, "Article not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article updated"})
}

func CreateVideo(c *gin.Context) {
	var payload models.VideoCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := contentService.CreateVideo(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err, "Video not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func CreateCourse(c *gin.Context) {
	var payload models.CourseCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := contentService.CreateCourse(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err, "Course not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "lessonCount": len(payload.Lessons)})
}

func CreateAudioFile(c *gin.Context) {
	var payload models.AudioFileCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := contentService.CreateAudioFile(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err, "Audio file not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func CreateLiveMeeting(c *gin.Context) {
	var payload models.LiveMeetingCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := contentService.CreateLiveMeeting(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err, "Live meeting not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func SetVerseOfTheDay(c *gin.Context) {
	var payload models.VerseSet
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := contentService.SetVerseOfTheDay(c.Request.Context(), payload); err != nil {
		writeError(c, err, "Verse of the day not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verse of the day updated"})
}

func GetSubscribers(c *gin.Context) {
	subscribers, err := contentService.GetSubscribers(c.Request.Context())
	if err != nil {
		degraded(c, err, []models.Subscriber{})
		return
	}
	c.JSON(http.StatusOK, subscribers)
}

func GetPrayerRequests(c *gin.Context) {
	requests, err := contentService.GetPrayerRequests(c.Request.Context())
	if err != nil {
		degraded(c, err, []models.PrayerRequest{})
		return
	}
	c.JSON(http.StatusOK, requests)
}

func MarkPrayerRequestRead(c *gin.Context) {
	id := c.Param("request_id")
	if err := contentService.MarkPrayerRequestRead(c.Request.Context(), id); err != nil {
		writeError(c, err, "Prayer request not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prayer request marked as read"})
}
