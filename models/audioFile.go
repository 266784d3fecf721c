package models

import (
	"fmt"
	"time"

	"github.com/FaithPortal/store"
)

type AudioFile struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Audio_URL   string    `json:"audioUrl"`
	Category    string    `json:"category"`
	Duration    string    `json:"duration"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AudioFileCreate carries an already-uploaded recording; the URL comes back
// from the storage provider before this payload is submitted.
type AudioFileCreate struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Audio_URL   string `json:"audioUrl" binding:"required,url"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
}

func AudioFileFromDoc(d store.Document) (AudioFile, error) {
	f := fieldsOf(d)
	a := AudioFile{
		ID:          d.ID,
		Title:       f.str("title"),
		Description: f.optStr("description"),
		Audio_URL:   f.optStr("audioUrl"),
		Category:    f.optStr("category"),
		Duration:    f.optStr("duration"),
		CreatedAt:   f.optTime("createdAt"),
	}
	if f.err != nil {
		return AudioFile{}, fmt.Errorf("audio file %s: %w", d.ID, f.err)
	}
	return a, nil
}
