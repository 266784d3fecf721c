package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FaithPortal/store"
)

func newTestService() (*Service, *store.Memory) {
	mem := store.NewMemory()
	return NewService(mem), mem
}

func seed(t *testing.T, mem *store.Memory, col string, data map[string]interface{}) string {
	t.Helper()
	id, err := mem.Create(context.Background(), col, data)
	if err != nil {
		t.Fatalf("Failed to seed %s: %v", col, err)
	}
	return id
}

func TestGetDocumentsOrdersByCreatedAtDescending(t *testing.T) {
	svc, mem := newTestService()

	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t1.Add(48 * time.Hour)

	// insertion order deliberately scrambled
	seed(t, mem, ColVideos, map[string]interface{}{"title": "second", "createdAt": t2})
	seed(t, mem, ColVideos, map[string]interface{}{"title": "oldest", "createdAt": t1})
	seed(t, mem, ColVideos, map[string]interface{}{"title": "newest", "createdAt": t3})

	docs, err := svc.GetDocuments(context.Background(), ColVideos, 0)
	assert.NoError(t, err)
	assert.Len(t, docs, 3)
	assert.Equal(t, "newest", docs[0].Data["title"])
	assert.Equal(t, "second", docs[1].Data["title"])
	assert.Equal(t, "oldest", docs[2].Data["title"])
}

func TestGetDocumentsSubscribersOrderBySubscribedAt(t *testing.T) {
	svc, mem := newTestService()

	t1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	// createdAt is present but must be ignored for subscribers
	seed(t, mem, ColSubscribers, map[string]interface{}{
		"email": "older@example.com", "subscribedAt": t1, "createdAt": t2,
	})
	seed(t, mem, ColSubscribers, map[string]interface{}{
		"email": "newer@example.com", "subscribedAt": t2, "createdAt": t1,
	})

	docs, err := svc.GetDocuments(context.Background(), ColSubscribers, 0)
	assert.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Equal(t, "newer@example.com", docs[0].Data["email"])
	assert.Equal(t, "older@example.com", docs[1].Data["email"])
}

func TestGetDocumentsLimit(t *testing.T) {
	svc, mem := newTestService()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seed(t, mem, ColAudios, map[string]interface{}{
			"title": "audio", "createdAt": base.Add(time.Duration(i) * time.Minute),
		})
	}

	docs, err := svc.GetDocuments(context.Background(), ColAudios, 2)
	assert.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestGetDocumentsEmptyCollection(t *testing.T) {
	svc, _ := newTestService()

	docs, err := svc.GetDocuments(context.Background(), ColArticles, 0)
	assert.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestGetDocumentsStoreUnavailable(t *testing.T) {
	svc := NewService(store.Unavailable{})

	_, err := svc.GetDocuments(context.Background(), ColArticles, 0)
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestGetSubscribersNewestFirst(t *testing.T) {
	svc, mem := newTestService()

	t1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seed(t, mem, ColSubscribers, map[string]interface{}{"email": "a@example.com", "subscribedAt": t1})
	seed(t, mem, ColSubscribers, map[string]interface{}{"email": "b@example.com", "subscribedAt": t1.Add(time.Hour)})

	subs, err := svc.GetSubscribers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, subs, 2)
	assert.Equal(t, "b@example.com", subs[0].Email)
}

func TestSubscribeStampsSubscribedAt(t *testing.T) {
	svc, mem := newTestService()

	stamp := time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC)
	mem.SetClock(func() time.Time { return stamp })

	id, err := svc.Subscribe(context.Background(), "new@example.com")
	assert.NoError(t, err)

	doc, err := mem.Get(context.Background(), ColSubscribers, id)
	assert.NoError(t, err)
	assert.Equal(t, stamp, doc.Data["subscribedAt"])
	assert.NotContains(t, doc.Data, "createdAt")
}

func TestCreatePrayerRequestAnonymousDefault(t *testing.T) {
	svc, mem := newTestService()

	id, err := svc.CreatePrayerRequest(context.Background(), anonymousRequest())
	assert.NoError(t, err)

	doc, err := mem.Get(context.Background(), ColPrayerRequests, id)
	assert.NoError(t, err)
	assert.Equal(t, "Anonymous", doc.Data["name"])
	assert.Equal(t, true, doc.Data["isAnonymous"])
	assert.Equal(t, false, doc.Data["isRead"])
}

func TestMarkPrayerRequestRead(t *testing.T) {
	svc, mem := newTestService()

	id, err := svc.CreatePrayerRequest(context.Background(), anonymousRequest())
	assert.NoError(t, err)

	assert.NoError(t, svc.MarkPrayerRequestRead(context.Background(), id))

	doc, err := mem.Get(context.Background(), ColPrayerRequests, id)
	assert.NoError(t, err)
	assert.Equal(t, true, doc.Data["isRead"])

	assert.ErrorIs(t, svc.MarkPrayerRequestRead(context.Background(), "missing"), store.ErrNotFound)
}

func TestVerseOfTheDayRoundTrip(t *testing.T) {
	svc, _ := newTestService()

	verse, err := svc.GetVerseOfTheDay(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, verse)

	err = svc.SetVerseOfTheDay(context.Background(), verseFixture("For God so loved the world", "John 3:16"))
	assert.NoError(t, err)

	verse, err = svc.GetVerseOfTheDay(context.Background())
	assert.NoError(t, err)
	if assert.NotNil(t, verse) {
		assert.Equal(t, "John 3:16", verse.Reference)
	}

	// the fixed document is overwritten, not duplicated
	err = svc.SetVerseOfTheDay(context.Background(), verseFixture("Be strong and courageous", "Joshua 1:9"))
	assert.NoError(t, err)

	verse, err = svc.GetVerseOfTheDay(context.Background())
	assert.NoError(t, err)
	if assert.NotNil(t, verse) {
		assert.Equal(t, "Joshua 1:9", verse.Reference)
		assert.Equal(t, "Be strong and courageous", verse.Text)
	}
}
