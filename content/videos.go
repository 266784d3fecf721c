package content

import (
	"context"
	"errors"
	"log"

	"github.com/FaithPortal/models"
	"github.com/FaithPortal/store"
)

func (s *Service) GetVideos(ctx context.Context, limit int) ([]models.Video, error) {
	docs, err := s.GetDocuments(ctx, ColVideos, limit)
	if err != nil {
		return nil, err
	}
	videos := make([]models.Video, 0, len(docs))
	for _, d := range docs {
		v, err := models.VideoFromDoc(d)
		if err != nil {
			log.Println("skipping malformed document:", err)
			continue
		}
		videos = append(videos, v)
	}
	return videos, nil
}

func (s *Service) GetVideoByID(ctx context.Context, id string) (*models.Video, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	doc, err := s.store.Get(ctx, ColVideos, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v, err := models.VideoFromDoc(doc)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVideo stores exactly one source field, matching whichever the admin
// form submitted.
func (s *Service) CreateVideo(ctx context.Context, payload models.VideoCreate) (string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data := map[string]interface{}{
		"title":       payload.Title,
		"description": payload.Description,
		"category":    payload.Category,
		"duration":    payload.Duration,
		"thumbnailId": payload.Thumbnail_ID,
		"createdAt":   store.ServerTimestamp,
	}
	if payload.Youtube_URL != "" {
		data["youtubeUrl"] = payload.Youtube_URL
	} else {
		data["videoUrl"] = payload.Video_URL
	}
	return s.store.Create(ctx, ColVideos, data)
}
