package models

import (
	"fmt"
	"time"

	"github.com/FaithPortal/store"
)

type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Duration     string    `json:"duration"`
	Thumbnail_ID string    `json:"thumbnailId"`
	Youtube_URL  string    `json:"youtubeUrl,omitempty"`
	Video_URL    string    `json:"videoUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasSource reports whether the video has any playable source. Renderers
// must treat the all-absent case as "source not available".
func (v Video) HasSource() bool {
	return v.Youtube_URL != "" || v.Video_URL != ""
}

type VideoCreate struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Category     string `json:"category"`
	Duration     string `json:"duration"`
	Thumbnail_ID string `json:"thumbnailId"`
	Youtube_URL  string `json:"youtubeUrl" binding:"omitempty,url"`
	Video_URL    string `json:"videoUrl" binding:"omitempty,url"`
}

// Validate enforces that exactly one of youtubeUrl/videoUrl is populated.
func (v VideoCreate) Validate() error {
	if v.Youtube_URL == "" && v.Video_URL == "" {
		return fmt.Errorf("either a YouTube URL or a video URL is required")
	}
	if v.Youtube_URL != "" && v.Video_URL != "" {
		return fmt.Errorf("only one of youtubeUrl and videoUrl may be set")
	}
	return nil
}

func VideoFromDoc(d store.Document) (Video, error) {
	f := fieldsOf(d)
	v := Video{
		ID:           d.ID,
		Title:        f.str("title"),
		Description:  f.optStr("description"),
		Category:     f.optStr("category"),
		Duration:     f.optStr("duration"),
		Thumbnail_ID: f.optStr("thumbnailId"),
		Youtube_URL:  f.optStr("youtubeUrl"),
		Video_URL:    f.optStr("videoUrl"),
		CreatedAt:    f.optTime("createdAt"),
	}
	if f.err != nil {
		return Video{}, fmt.Errorf("video %s: %w", d.ID, f.err)
	}
	return v, nil
}
