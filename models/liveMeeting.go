package models

import (
	"fmt"
	"time"

	"github.com/FaithPortal/store"
)

// LiveMeeting may carry zero or more platform links; the all-absent case is
// valid and left to the UI to handle.
type LiveMeeting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Youtube_URL  string    `json:"youtubeUrl,omitempty"`
	Facebook_URL string    `json:"facebookUrl,omitempty"`
	Twitter_URL  string    `json:"twitterUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type LiveMeetingCreate struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Youtube_URL  string `json:"youtubeUrl" binding:"omitempty,url"`
	Facebook_URL string `json:"facebookUrl" binding:"omitempty,url"`
	Twitter_URL  string `json:"twitterUrl" binding:"omitempty,url"`
}

func LiveMeetingFromDoc(d store.Document) (LiveMeeting, error) {
	f := fieldsOf(d)
	m := LiveMeeting{
		ID:           d.ID,
		Title:        f.str("title"),
		Description:  f.optStr("description"),
		Youtube_URL:  f.optStr("youtubeUrl"),
		Facebook_URL: f.optStr("facebookUrl"),
		Twitter_URL:  f.optStr("twitterUrl"),
		CreatedAt:    f.optTime("createdAt"),
	}
	if f.err != nil {
		return LiveMeeting{}, fmt.Errorf("live meeting %s: %w", d.ID, f.err)
	}
	return m, nil
}
