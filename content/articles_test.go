package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FaithPortal/store"
)

func TestCreateArticleDerivesSlugAndExcerpt(t *testing.T) {
	svc, mem := newTestService()

	payload := articleFixture("The Power of Forgiveness")
	id, err := svc.CreateArticle(context.Background(), payload)
	assert.NoError(t, err)

	doc, err := mem.Get(context.Background(), ColArticles, id)
	assert.NoError(t, err)
	assert.Equal(t, "the-power-of-forgiveness", doc.Data["slug"])
	assert.Equal(t, payload.Content, doc.Data["excerpt"])
	_, ok := doc.Data["createdAt"].(time.Time)
	assert.True(t, ok, "createdAt should be stamped by the store")
}

func TestGetArticleBySlugExactMatch(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateArticle(context.Background(), articleFixture("The Power of Forgiveness"))
	assert.NoError(t, err)

	article, err := svc.GetArticleBySlug(context.Background(), "the-power-of-forgiveness")
	assert.NoError(t, err)
	if assert.NotNil(t, article) {
		assert.Equal(t, "The Power of Forgiveness", article.Title)
	}

	// slugs are stored lowercase and matched case-sensitively
	article, err = svc.GetArticleBySlug(context.Background(), "The-Power-Of-Forgiveness")
	assert.NoError(t, err)
	assert.Nil(t, article)
}

func TestGetArticleByIDNotFound(t *testing.T) {
	svc, _ := newTestService()

	article, err := svc.GetArticleByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, article)
}

func TestGetArticlesDerivedDate(t *testing.T) {
	svc, mem := newTestService()

	createdAt := time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC)
	seed(t, mem, ColArticles, map[string]interface{}{
		"title":     "Dated",
		"slug":      "dated",
		"createdAt": createdAt,
	})

	articles, err := svc.GetArticles(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, createdAt.Format(time.RFC3339), articles[0].Date)
}

func TestGetArticlesDateFallsBackToNow(t *testing.T) {
	svc, mem := newTestService()

	now := time.Date(2025, 8, 1, 16, 45, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// document predates the createdAt field entirely
	seed(t, mem, ColArticles, map[string]interface{}{
		"title": "Undated",
		"slug":  "undated",
	})

	articles, err := svc.GetArticles(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, articles, 1)

	parsed, err := time.Parse(time.RFC3339, articles[0].Date)
	assert.NoError(t, err)
	assert.Equal(t, now, parsed)
}

func TestGetArticlesEmptyCollection(t *testing.T) {
	svc, _ := newTestService()

	articles, err := svc.GetArticles(context.Background(), 0)
	assert.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestGetArticlesSkipsMalformedDocument(t *testing.T) {
	svc, mem := newTestService()

	seed(t, mem, ColArticles, map[string]interface{}{
		"title":     "Good",
		"slug":      "good",
		"createdAt": time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	seed(t, mem, ColArticles, map[string]interface{}{
		"title":     42, // malformed: title is not a string
		"slug":      "bad",
		"createdAt": time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
	})

	articles, err := svc.GetArticles(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, "Good", articles[0].Title)
}

func TestUpdateArticlePartialMerge(t *testing.T) {
	svc, mem := newTestService()

	id, err := svc.CreateArticle(context.Background(), articleFixture("Original Title"))
	assert.NoError(t, err)

	before, err := mem.Get(context.Background(), ColArticles, id)
	assert.NoError(t, err)

	newTitle := "New"
	err = svc.UpdateArticle(context.Background(), id, partialTitle(newTitle))
	assert.NoError(t, err)

	after, err := mem.Get(context.Background(), ColArticles, id)
	assert.NoError(t, err)
	assert.Equal(t, "New", after.Data["title"])
	assert.Equal(t, before.Data["author"], after.Data["author"])
	assert.Equal(t, before.Data["category"], after.Data["category"])
	assert.Equal(t, before.Data["content"], after.Data["content"])
	assert.Equal(t, before.Data["slug"], after.Data["slug"])
	assert.Equal(t, before.Data["createdAt"], after.Data["createdAt"])
}

func TestUpdateArticleNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.UpdateArticle(context.Background(), "missing", partialTitle("New"))
	assert.ErrorIs(t, err, store.ErrNotFound)
}
