package models

import (
	"fmt"
	"time"

	"github.com/FaithPortal/store"
)

// Verse is the verse of the day, kept as a single well-known document that
// admins overwrite in place.
type Verse struct {
	Text      string    `json:"text"`
	Reference string    `json:"reference"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type VerseSet struct {
	Text      string `json:"text" binding:"required"`
	Reference string `json:"reference" binding:"required"`
}

func VerseFromDoc(d store.Document) (Verse, error) {
	f := fieldsOf(d)
	v := Verse{
		Text:      f.str("text"),
		Reference: f.str("reference"),
		UpdatedAt: f.optTime("updatedAt"),
	}
	if f.err != nil {
		return Verse{}, fmt.Errorf("verse of the day: %w", f.err)
	}
	return v, nil
}
