package content

import (
	"context"
	"errors"
	"log"

	"github.com/FaithPortal/models"
	"github.com/FaithPortal/store"
)

func lessonsPath(courseID string) string {
	return ColCourses + "/" + courseID + "/lessons"
}

func (s *Service) GetCourses(ctx context.Context, limit int) ([]models.Course, error) {
	docs, err := s.GetDocuments(ctx, ColCourses, limit)
	if err != nil {
		return nil, err
	}
	courses := make([]models.Course, 0, len(docs))
	for _, d := range docs {
		c, err := models.CourseFromDoc(d)
		if err != nil {
			log.Println("skipping malformed document:", err)
			continue
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func (s *Service) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	doc, err := s.store.Get(ctx, ColCourses, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c, err := models.CourseFromDoc(doc)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetLessonsForCourse orders by the 1-based order field ascending, never by
// creation time: lesson sequence is pedagogical, not chronological.
func (s *Service) GetLessonsForCourse(ctx context.Context, courseID string) ([]models.Lesson, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	docs, err := s.store.List(ctx, lessonsPath(courseID), store.Order{Field: "order"}, 0)
	if err != nil {
		return nil, err
	}
	lessons := make([]models.Lesson, 0, len(docs))
	for _, d := range docs {
		l, err := models.LessonFromDoc(d)
		if err != nil {
			log.Println("skipping malformed document:", err)
			continue
		}
		lessons = append(lessons, l)
	}
	return lessons, nil
}

// CreateCourse commits the course document and all of its lessons in a
// single atomic batch, so a course can never appear with a lesson count
// that does not match what was submitted.
func (s *Service) CreateCourse(ctx context.Context, payload models.CourseCreate) (string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	batch := s.store.Batch()
	courseID := batch.Create(ColCourses, map[string]interface{}{
		"title":        payload.Title,
		"description":  payload.Description,
		"thumbnailUrl": payload.Thumbnail_URL,
		"lessonCount":  len(payload.Lessons),
		"createdAt":    store.ServerTimestamp,
		"updatedAt":    store.ServerTimestamp,
	})
	for i, lesson := range payload.Lessons {
		batch.Create(lessonsPath(courseID), map[string]interface{}{
			"title":      lesson.Title,
			"youtubeUrl": lesson.Youtube_URL,
			"order":      i + 1,
			"createdAt":  store.ServerTimestamp,
		})
	}
	if err := batch.Commit(ctx); err != nil {
		return "", err
	}
	return courseID, nil
}
