package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FaithPortal/content"
	"github.com/FaithPortal/models"
	"github.com/FaithPortal/store"
)

// contentService is the data-access handle, installed by main and swapped
// for an in-memory store by tests.
var contentService *content.Service

func SetContentService(s *content.Service) {
	contentService = s
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// limitParam parses an optional positive ?limit= query parameter. Returns
// ok=false after writing the 400 response.
func limitParam(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	return limit, true
}

// degraded handles a failed public read: an unavailable store renders as an
// empty page, anything else is a server error. Never fatal to the process.
func degraded(c *gin.Context, err error, empty interface{}) {
	if errors.Is(err, store.ErrUnavailable) {
		log.Println("content store unavailable, serving empty result")
		c.JSON(http.StatusOK, empty)
		return
	}
	log.Println(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
}

func GetArticles(c *gin.Context) {
	limit, ok := limitParam(c)
	if !ok {
		return
	}
	articles, err := contentService.GetArticles(c.Request.Context(), limit)
	if err != nil {
		degraded(c, err, []models.Article{})
		return
	}
	c.JSON(http.StatusOK, articles)
}

func GetArticle(c *gin.Context) {
	article, err := contentService.GetArticleByID(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func GetArticleBySlug(c *gin.Context) {
	article, err := contentService.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func GetVideos(c *gin.Context) {
	limit, ok := limitParam(c)
	if !ok {
		return
	}
	videos, err := contentService.GetVideos(c.Request.Context(), limit)
	if err != nil {
		degraded(c, err, []models.Video{})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func GetVideo(c *gin.Context) {
	video, err := contentService.GetVideoByID(c.Request.Context(), c.Param("video_id"))
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch video"})
		return
	}
	if video == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	c.JSON(http.StatusOK, video)
}

func GetCourses(c *gin.Context) {
	limit, ok := limitParam(c)
	if !ok {
		return
	}
	courses, err := contentService.GetCourses(c.Request.Context(), limit)
	if err != nil {
		degraded(c, err, []models.Course{})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func GetCourse(c *gin.Context) {
	course, err := contentService.GetCourseByID(c.Request.Context(), c.Param("course_id"))
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch course"})
		return
	}
	if course == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

func GetCourseLessons(c *gin.Context) {
	lessons, err := contentService.GetLessonsForCourse(c.Request.Context(), c.Param("course_id"))
	if err != nil {
		degraded(c, err, []models.Lesson{})
		return
	}
	c.JSON(http.StatusOK, lessons)
}

func GetAudioFiles(c *gin.Context) {
	limit, ok := limitParam(c)
	if !ok {
		return
	}
	files, err := contentService.GetAudioFiles(c.Request.Context(), limit)
	if err != nil {
		degraded(c, err, []models.AudioFile{})
		return
	}
	c.JSON(http.StatusOK, files)
}

func GetLiveMeetings(c *gin.Context) {
	limit, ok := limitParam(c)
	if !ok {
		return
	}
	meetings, err := contentService.GetLiveMeetings(c.Request.Context(), limit)
	if err != nil {
		degraded(c, err, []models.LiveMeeting{})
		return
	}
	c.JSON(http.StatusOK, meetings)
}

func GetVerseOfTheDay(c *gin.Context) {
	verse, err := contentService.GetVerseOfTheDay(c.Request.Context())
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch verse of the day"})
		return
	}
	if verse == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No verse of the day has been set"})
		return
	}
	c.JSON(http.StatusOK, verse)
}
