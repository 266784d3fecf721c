package content

import (
	"context"
	"errors"
	"log"

	"github.com/FaithPortal/models"
	"github.com/FaithPortal/store"
)

// GetArticles returns the newest articles first, each with its display date
// derived from the stored creation timestamp.
func (s *Service) GetArticles(ctx context.Context, limit int) ([]models.Article, error) {
	docs, err := s.GetDocuments(ctx, ColArticles, limit)
	if err != nil {
		return nil, err
	}
	articles := make([]models.Article, 0, len(docs))
	for _, d := range docs {
		a, err := models.ArticleFromDoc(d)
		if err != nil {
			log.Println("skipping malformed document:", err)
			continue
		}
		a.Date = s.displayDate(a.CreatedAt)
		articles = append(articles, a)
	}
	return articles, nil
}

// GetArticleBySlug matches the stored slug exactly, case-sensitively. Slugs
// are generated lowercase at write time and never re-validated, so no
// normalization happens here. A missing article is (nil, nil).
func (s *Service) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	docs, err := s.store.Query(ctx, ColArticles, "slug", slug)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	a, err := models.ArticleFromDoc(docs[0])
	if err != nil {
		return nil, err
	}
	a.Date = s.displayDate(a.CreatedAt)
	return &a, nil
}

func (s *Service) GetArticleByID(ctx context.Context, id string) (*models.Article, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	doc, err := s.store.Get(ctx, ColArticles, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a, err := models.ArticleFromDoc(doc)
	if err != nil {
		return nil, err
	}
	a.Date = s.displayDate(a.CreatedAt)
	return &a, nil
}

// CreateArticle derives the slug and excerpt at write time and lets the
// store stamp the timestamps.
func (s *Service) CreateArticle(ctx context.Context, payload models.ArticleCreate) (string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data := map[string]interface{}{
		"title":     payload.Title,
		"author":    payload.Author,
		"category":  payload.Category,
		"content":   payload.Content,
		"slug":      models.Slugify(payload.Title),
		"excerpt":   models.ExcerptOf(payload.Content),
		"imageId":   payload.Image_ID,
		"createdAt": store.ServerTimestamp,
		"updatedAt": store.ServerTimestamp,
	}
	return s.store.Create(ctx, ColArticles, data)
}

// UpdateArticle merges only the fields present in the partial payload.
// Returns store.ErrNotFound when the article does not exist.
func (s *Service) UpdateArticle(ctx context.Context, id string, payload models.ArticleUpdate) error {
	fields := payload.Fields()
	if len(fields) == 0 {
		return nil
	}
	fields["updatedAt"] = store.ServerTimestamp

	ctx, cancel := s.opContext(ctx)
	defer cancel()
	return s.store.Merge(ctx, ColArticles, id, fields)
}
