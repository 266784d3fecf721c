package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/FaithPortal/store"
)

type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Image_ID  string    `json:"imageId"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type ArticleCreate struct {
	Title    string `json:"title" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Category string `json:"category" binding:"required"`
	Content  string `json:"content" binding:"required,min=10"`
	Image_ID string `json:"imageId"`
}

// ArticleUpdate is a partial merge payload; nil fields are left untouched.
type ArticleUpdate struct {
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	Category *string `json:"category"`
	Content  *string `json:"content"`
	Excerpt  *string `json:"excerpt"`
	Image_ID *string `json:"imageId"`
}

func (u ArticleUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Author != nil {
		fields["author"] = *u.Author
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Content != nil {
		fields["content"] = *u.Content
	}
	if u.Excerpt != nil {
		fields["excerpt"] = *u.Excerpt
	}
	if u.Image_ID != nil {
		fields["imageId"] = *u.Image_ID
	}
	return fields
}

func ArticleFromDoc(d store.Document) (Article, error) {
	f := fieldsOf(d)
	a := Article{
		ID:        d.ID,
		Title:     f.str("title"),
		Slug:      f.str("slug"),
		Author:    f.optStr("author"),
		Category:  f.optStr("category"),
		Content:   f.optStr("content"),
		Excerpt:   f.optStr("excerpt"),
		Image_ID:  f.optStr("imageId"),
		CreatedAt: f.optTime("createdAt"),
	}
	if f.err != nil {
		return Article{}, fmt.Errorf("article %s: %w", d.ID, f.err)
	}
	return a, nil
}

// Slugify derives an article's URL slug from its title the way the upload
// form always has: lowercase, runs of whitespace collapsed to hyphens.
// Leading and trailing whitespace never produces edge hyphens.
// Uniqueness is not guaranteed.
func Slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

// Excerpt is the first 150 characters of the article body. Truncation
// counts runes, not bytes; Firestore rejects strings that are not valid
// UTF-8.
func ExcerptOf(content string) string {
	runes := []rune(content)
	if len(runes) > 150 {
		return string(runes[:150])
	}
	return content
}
