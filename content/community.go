package content

import (
	"context"
	"log"

	"github.com/FaithPortal/models"
	"github.com/FaithPortal/store"
)

func (s *Service) GetSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	docs, err := s.GetDocuments(ctx, ColSubscribers, 0)
	if err != nil {
		return nil, err
	}
	subs := make([]models.Subscriber, 0, len(docs))
	for _, d := range docs {
		sub, err := models.SubscriberFromDoc(d)
		if err != nil {
			log.Println("skipping malformed document:", err)
			continue
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Subscribe records a newsletter sign-up. The flow stamps subscribedAt,
// which is why the subscriber collection orders on that field.
func (s *Service) Subscribe(ctx context.Context, email string) (string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	return s.store.Create(ctx, ColSubscribers, map[string]interface{}{
		"email":        email,
		"subscribedAt": store.ServerTimestamp,
	})
}

func (s *Service) GetPrayerRequests(ctx context.Context) ([]models.PrayerRequest, error) {
	docs, err := s.GetDocuments(ctx, ColPrayerRequests, 0)
	if err != nil {
		return nil, err
	}
	requests := make([]models.PrayerRequest, 0, len(docs))
	for _, d := range docs {
		r, err := models.PrayerRequestFromDoc(d)
		if err != nil {
			log.Println("skipping malformed document:", err)
			continue
		}
		requests = append(requests, r)
	}
	return requests, nil
}

// CreatePrayerRequest stores a submission from the prayer and counselling
// form. A blank name is recorded as Anonymous.
func (s *Service) CreatePrayerRequest(ctx context.Context, payload models.PrayerRequestCreate) (string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	name := payload.Name
	anonymous := name == ""
	if anonymous {
		name = "Anonymous"
	}
	return s.store.Create(ctx, ColPrayerRequests, map[string]interface{}{
		"name":        name,
		"email":       payload.Email,
		"requestType": payload.Request_Type,
		"message":     payload.Message,
		"isAnonymous": anonymous,
		"isRead":      false,
		"createdAt":   store.ServerTimestamp,
	})
}

// MarkPrayerRequestRead flips the isRead flag; store.ErrNotFound when the
// request does not exist.
func (s *Service) MarkPrayerRequestRead(ctx context.Context, id string) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	return s.store.Merge(ctx, ColPrayerRequests, id, map[string]interface{}{
		"isRead": true,
	})
}
