package content

import (
	"context"
	"time"

	"github.com/FaithPortal/store"
)

// Collection names, as the admin console writes them.
const (
	ColArticles       = "articles"
	ColVideos         = "videos"
	ColAudios         = "audios"
	ColCourses        = "courses"
	ColLiveMeetings   = "liveMeetings"
	ColSubscribers    = "subscribers"
	ColPrayerRequests = "prayerRequests"
	ColVerseOfTheDay  = "verseOfTheDay"
)

// Every store round trip gets a caller-side cap so an unreachable store
// surfaces as unavailable instead of hanging the request.
const defaultTimeout = 10 * time.Second

// Service is the content data-access layer. It holds the store handle
// explicitly so tests can run against an in-memory store.
type Service struct {
	store   store.Store
	timeout time.Duration
	now     func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{
		store:   st,
		timeout: defaultTimeout,
		now:     time.Now,
	}
}

func (s *Service) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// orderFieldFor picks the timestamp field a collection scan sorts on.
// Subscribers are the one exception: the newsletter sign-up flow stamps
// subscribedAt instead of createdAt.
func orderFieldFor(collection string) string {
	if collection == ColSubscribers {
		return "subscribedAt"
	}
	return "createdAt"
}

// GetDocuments is the generic accessor: all documents of a collection,
// newest first by the collection's timestamp field, optionally limited.
// An empty collection yields an empty slice.
func (s *Service) GetDocuments(ctx context.Context, collection string, limit int) ([]store.Document, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	return s.store.List(ctx, collection, store.Order{Field: orderFieldFor(collection), Desc: true}, limit)
}

// displayDate derives the human-readable date from the server-assigned
// timestamp, falling back to "now" when the document predates the field.
func (s *Service) displayDate(createdAt time.Time) string {
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	return createdAt.UTC().Format(time.RFC3339)
}
