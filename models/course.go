package models

import (
	"fmt"
	"time"

	"github.com/FaithPortal/store"
)

type Course struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Thumbnail_URL string    `json:"thumbnailUrl"`
	Lesson_Count  int       `json:"lessonCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Lesson is a child document of a course. Sequence is the 1-based order
// field, which drives presentation order regardless of creation time.
type Lesson struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Youtube_URL string    `json:"youtubeUrl"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LessonCreate struct {
	Title       string `json:"title" binding:"required"`
	Youtube_URL string `json:"youtubeUrl" binding:"required,url"`
}

type CourseCreate struct {
	Title         string         `json:"title" binding:"required"`
	Description   string         `json:"description" binding:"required"`
	Thumbnail_URL string         `json:"thumbnailUrl" binding:"required,url"`
	Lessons       []LessonCreate `json:"lessons" binding:"required,min=1,dive"`
}

func CourseFromDoc(d store.Document) (Course, error) {
	f := fieldsOf(d)
	c := Course{
		ID:            d.ID,
		Title:         f.str("title"),
		Description:   f.optStr("description"),
		Thumbnail_URL: f.optStr("thumbnailUrl"),
		Lesson_Count:  f.num("lessonCount"),
		CreatedAt:     f.optTime("createdAt"),
	}
	if f.err != nil {
		return Course{}, fmt.Errorf("course %s: %w", d.ID, f.err)
	}
	return c, nil
}

func LessonFromDoc(d store.Document) (Lesson, error) {
	f := fieldsOf(d)
	l := Lesson{
		ID:          d.ID,
		Title:       f.str("title"),
		Youtube_URL: f.optStr("youtubeUrl"),
		Order:       f.num("order"),
		CreatedAt:   f.optTime("createdAt"),
	}
	if f.err != nil {
		return Lesson{}, fmt.Errorf("lesson %s: %w", d.ID, f.err)
	}
	return l, nil
}
