package content

import (
	"context"
	"errors"
	"log"

	"github.com/FaithPortal/models"
	"github.com/FaithPortal/store"
)

// verseDocID is the single well-known verse-of-the-day document.
const verseDocID = "current"

func (s *Service) GetAudioFiles(ctx context.Context, limit int) ([]models.AudioFile, error) {
	docs, err := s.GetDocuments(ctx, ColAudios, limit)
	if err != nil {
		return nil, err
	}
	files := make([]models.AudioFile, 0, len(docs))
	for _, d := range docs {
		a, err := models.AudioFileFromDoc(d)
		if err != nil {
			log.Println("skipping malformed document:", err)
			continue
		}
		files = append(files, a)
	}
	return files, nil
}

func (s *Service) CreateAudioFile(ctx context.Context, payload models.AudioFileCreate) (string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	return s.store.Create(ctx, ColAudios, map[string]interface{}{
		"title":       payload.Title,
		"description": payload.Description,
		"audioUrl":    payload.Audio_URL,
		"category":    payload.Category,
		"duration":    payload.Duration,
		"createdAt":   store.ServerTimestamp,
	})
}

func (s *Service) GetLiveMeetings(ctx context.Context, limit int) ([]models.LiveMeeting, error) {
	docs, err := s.GetDocuments(ctx, ColLiveMeetings, limit)
	if err != nil {
		return nil, err
	}
	meetings := make([]models.LiveMeeting, 0, len(docs))
	for _, d := range docs {
		m, err := models.LiveMeetingFromDoc(d)
		if err != nil {
			log.Println("skipping malformed document:", err)
			continue
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}

// CreateLiveMeeting drops empty platform links; a meeting with none at all
// is still valid.
func (s *Service) CreateLiveMeeting(ctx context.Context, payload models.LiveMeetingCreate) (string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data := map[string]interface{}{
		"title":       payload.Title,
		"description": payload.Description,
		"createdAt":   store.ServerTimestamp,
		"updatedAt":   store.ServerTimestamp,
	}
	if payload.Youtube_URL != "" {
		data["youtubeUrl"] = payload.Youtube_URL
	}
	if payload.Facebook_URL != "" {
		data["facebookUrl"] = payload.Facebook_URL
	}
	if payload.Twitter_URL != "" {
		data["twitterUrl"] = payload.Twitter_URL
	}
	return s.store.Create(ctx, ColLiveMeetings, data)
}

func (s *Service) GetVerseOfTheDay(ctx context.Context) (*models.Verse, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	doc, err := s.store.Get(ctx, ColVerseOfTheDay, verseDocID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v, err := models.VerseFromDoc(doc)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SetVerseOfTheDay overwrites the current verse in place.
func (s *Service) SetVerseOfTheDay(ctx context.Context, payload models.VerseSet) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	return s.store.Set(ctx, ColVerseOfTheDay, verseDocID, map[string]interface{}{
		"text":      payload.Text,
		"reference": payload.Reference,
		"updatedAt": store.ServerTimestamp,
	})
}
