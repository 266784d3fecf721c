package models

import (
	"fmt"
	"time"

	"github.com/FaithPortal/store"
)

// Subscriber is written by the newsletter sign-up flow, which stamps
// subscribedAt rather than createdAt.
type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func SubscriberFromDoc(d store.Document) (Subscriber, error) {
	f := fieldsOf(d)
	s := Subscriber{
		ID:           d.ID,
		Email:        f.str("email"),
		SubscribedAt: f.optTime("subscribedAt"),
	}
	if f.err != nil {
		return Subscriber{}, fmt.Errorf("subscriber %s: %w", d.ID, f.err)
	}
	return s, nil
}
