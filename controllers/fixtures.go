package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FaithPortal/content"
	"github.com/FaithPortal/models"
	"github.com/FaithPortal/store"
)

// Test fixture data for use in tests

// MockAdmin creates a user carrying the admin claim
func MockAdmin() models.User {
	return models.User{
		UID:   "admin-uid",
		Email: "admin@example.com",
		Name:  "Admin User",
		Admin: true,
	}
}

// MockMember creates a signed-in user without the admin claim
func MockMember() models.User {
	return models.User{
		UID:   "member-uid",
		Email: "member@example.com",
		Name:  "Test Member",
	}
}

// SetJSONBody attaches a JSON request body so ShouldBindJSON has something
// to read.
func SetJSONBody(t *testing.T, c *gin.Context, v interface{}) {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	c.Request = httptest.NewRequest("POST", "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
}

// SetEmptyRequest attaches a bare request for handlers that only read the
// context or query string.
func SetEmptyRequest(c *gin.Context, target string) {
	c.Request = httptest.NewRequest("GET", target, nil)
}

// SeedArticle writes an article document with an explicit creation time.
func SeedArticle(t *testing.T, mem *store.Memory, title string, createdAt time.Time) string {
	t.Helper()
	id, err := mem.Create(context.Background(), content.ColArticles, map[string]interface{}{
		"title":     title,
		"slug":      models.Slugify(title),
		"author":    "Pastor John Doe",
		"category":  "Christian Living",
		"content":   "It came to pass that a fixture was needed for the tests.",
		"excerpt":   "It came to pass",
		"imageId":   "article-image-1",
		"createdAt": createdAt,
	})
	if err != nil {
		t.Fatalf("Failed to seed article: %v", err)
	}
	return id
}

// SeedVideo writes a video document with a YouTube source.
func SeedVideo(t *testing.T, mem *store.Memory, title string, createdAt time.Time) string {
	t.Helper()
	id, err := mem.Create(context.Background(), content.ColVideos, map[string]interface{}{
		"title":       title,
		"description": "A teaching video",
		"category":    "General",
		"duration":    "12:34",
		"thumbnailId": "video-thumb-1",
		"youtubeUrl":  "https://youtube.com/watch?v=fixture",
		"createdAt":   createdAt,
	})
	if err != nil {
		t.Fatalf("Failed to seed video: %v", err)
	}
	return id
}
