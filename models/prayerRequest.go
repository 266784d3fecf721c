package models

import (
	"fmt"
	"time"

	"github.com/FaithPortal/store"
)

const (
	RequestTypePrayer      = "prayer"
	RequestTypeCounselling = "counselling"
)

type PrayerRequest struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Request_Type string    `json:"requestType"`
	Message      string    `json:"message"`
	Is_Anonymous bool      `json:"isAnonymous"`
	Is_Read      bool      `json:"isRead"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PrayerRequestCreate struct {
	Name         string `json:"name"`
	Email        string `json:"email" binding:"required,email"`
	Request_Type string `json:"requestType" binding:"required,oneof=prayer counselling"`
	Message      string `json:"message" binding:"required,min=10"`
}

func PrayerRequestFromDoc(d store.Document) (PrayerRequest, error) {
	f := fieldsOf(d)
	r := PrayerRequest{
		ID:           d.ID,
		Name:         f.str("name"),
		Email:        f.str("email"),
		Request_Type: f.str("requestType"),
		Message:      f.optStr("message"),
		Is_Anonymous: f.optBool("isAnonymous"),
		Is_Read:      f.optBool("isRead"),
		CreatedAt:    f.optTime("createdAt"),
	}
	if f.err != nil {
		return PrayerRequest{}, fmt.Errorf("prayer request %s: %w", d.ID, f.err)
	}
	return r, nil
}
