package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/FaithPortal/content"
	"github.com/FaithPortal/models"
	"github.com/FaithPortal/store"
)

func TestCreateArticle(t *testing.T) {
	tests := []struct {
		name           string
		payload        interface{}
		unavailable    bool
		expectedStatus int
	}{
		{
			name: "successful create",
			payload: models.ArticleCreate{
				Title:    "A New Season",
				Author:   "Pastor Jane",
				Category: "Encouragement",
				Content:  "There is a season for everything under heaven.",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - missing fields",
			payload:        gin.H{"title": "Only a title"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store unavailable surfaces as 503",
			payload: models.ArticleCreate{
				Title:    "A New Season",
				Author:   "Pastor Jane",
				Category: "Encouragement",
				Content:  "There is a season for everything under heaven.",
			},
			unavailable:    true,
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, cleanup := SetupTestStore(t)
			defer cleanup()

			if tt.unavailable {
				mem.FailWith(store.ErrUnavailable)
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdmin(), true)
			SetJSONBody(t, c, tt.payload)

			CreateArticle(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				docs, err := mem.List(context.Background(), content.ColArticles, store.Order{Field: "createdAt", Desc: true}, 0)
				assert.NoError(t, err)
				assert.Len(t, docs, 1)
				assert.Equal(t, "a-new-season", docs[0].Data["slug"])
			}
		})
	}
}

func TestUpdateArticle(t *testing.T) {
	tests := []struct {
		name           string
		useSeededID    bool
		expectedStatus int
	}{
		{
			name:           "successful partial update",
			useSeededID:    true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, cleanup := SetupTestStore(t)
			defer cleanup()

			id := "missing"
			if tt.useSeededID {
				id = SeedArticle(t, mem, "Before", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdmin(), true)
			SetJSONBody(t, c, gin.H{"title": "After"})
			c.Params = append(c.Params, gin.Param{Key: "article_id", Value: id})

			UpdateArticle(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.useSeededID {
				doc, err := mem.Get(context.Background(), content.ColArticles, id)
				assert.NoError(t, err)
				assert.Equal(t, "After", doc.Data["title"])
				assert.Equal(t, "Pastor John Doe", doc.Data["author"])
			}
		})
	}
}

func TestCreateVideoSourceValidation(t *testing.T) {
	tests := []struct {
		name           string
		payload        models.VideoCreate
		expectedStatus int
	}{
		{
			name: "youtube source accepted",
			payload: models.VideoCreate{
				Title:       "Teaching",
				Description: "Weekly teaching",
				Youtube_URL: "https://youtube.com/watch?v=abc",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "uploaded source accepted",
			payload: models.VideoCreate{
				Title:       "Teaching",
				Description: "Weekly teaching",
				Video_URL:   "https://cdn.example.com/v.mp4",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "no source rejected",
			payload: models.VideoCreate{
				Title:       "Teaching",
				Description: "Weekly teaching",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "both sources rejected",
			payload: models.VideoCreate{
				Title:       "Teaching",
				Description: "Weekly teaching",
				Youtube_URL: "https://youtube.com/watch?v=abc",
				Video_URL:   "https://cdn.example.com/v.mp4",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cleanup := SetupTestStore(t)
			defer cleanup()

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdmin(), true)
			SetJSONBody(t, c, tt.payload)

			CreateVideo(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCreateCourse(t *testing.T) {
	mem, cleanup := SetupTestStore(t)
	defer cleanup()

	payload := models.CourseCreate{
		Title:         "Foundations of Faith",
		Description:   "An introductory course",
		Thumbnail_URL: "https://example.com/thumb.png",
		Lessons: []models.LessonCreate{
			{Title: "Lesson one", Youtube_URL: "https://youtube.com/watch?v=1"},
			{Title: "Lesson two", Youtube_URL: "https://youtube.com/watch?v=2"},
			{Title: "Lesson three", Youtube_URL: "https://youtube.com/watch?v=3"},
		},
	}

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockAdmin(), true)
	SetJSONBody(t, c, payload)

	CreateCourse(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		ID          string `json:"id"`
		LessonCount int    `json:"lessonCount"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 3, response.LessonCount)

	lessons, err := mem.List(context.Background(), content.ColCourses+"/"+response.ID+"/lessons", store.Order{Field: "order"}, 0)
	assert.NoError(t, err)
	assert.Len(t, lessons, 3)
}

func TestCreateCourseRequiresLessons(t *testing.T) {
	_, cleanup := SetupTestStore(t)
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockAdmin(), true)
	SetJSONBody(t, c, gin.H{
		"title":        "Empty",
		"description":  "No lessons",
		"thumbnailUrl": "https://example.com/thumb.png",
		"lessons":      []gin.H{},
	})

	CreateCourse(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkPrayerRequestRead(t *testing.T) {
	mem, cleanup := SetupTestStore(t)
	defer cleanup()

	id, err := mem.Create(context.Background(), content.ColPrayerRequests, map[string]interface{}{
		"name":        "Anonymous",
		"email":       "seeker@example.com",
		"requestType": "prayer",
		"message":     "Please pray for my family.",
		"isAnonymous": true,
		"isRead":      false,
		"createdAt":   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockAdmin(), true)
	SetEmptyRequest(c, "/admin/prayer-requests/"+id+"/read")
	c.Params = append(c.Params, gin.Param{Key: "request_id", Value: id})

	MarkPrayerRequestRead(c)

	assert.Equal(t, http.StatusOK, w.Code)

	doc, err := mem.Get(context.Background(), content.ColPrayerRequests, id)
	assert.NoError(t, err)
	assert.Equal(t, true, doc.Data["isRead"])
}

func TestGetSubscribersOrderedBySubscribedAt(t *testing.T) {
	mem, cleanup := SetupTestStore(t)
	defer cleanup()

	t1 := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err := mem.Create(context.Background(), content.ColSubscribers, map[string]interface{}{
		"email": "first@example.com", "subscribedAt": t1,
	})
	assert.NoError(t, err)
	_, err = mem.Create(context.Background(), content.ColSubscribers, map[string]interface{}{
		"email": "second@example.com", "subscribedAt": t1.Add(time.Hour),
	})
	assert.NoError(t, err)

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockAdmin(), true)
	SetEmptyRequest(c, "/admin/subscribers")

	GetSubscribers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []models.Subscriber
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
	assert.Equal(t, "second@example.com", response[0].Email)
}
