package content

import "github.com/FaithPortal/models"

func anonymousRequest() models.PrayerRequestCreate {
	return models.PrayerRequestCreate{
		Email:        "seeker@example.com",
		Request_Type: models.RequestTypePrayer,
		Message:      "Please pray for my family this week.",
	}
}

func verseFixture(text, reference string) models.VerseSet {
	return models.VerseSet{Text: text, Reference: reference}
}

func courseFixture(lessons ...string) models.CourseCreate {
	c := models.CourseCreate{
		Title:         "Foundations of Faith",
		Description:   "An introductory course",
		Thumbnail_URL: "https://example.com/thumb.png",
	}
	for _, title := range lessons {
		c.Lessons = append(c.Lessons, models.LessonCreate{
			Title:       title,
			Youtube_URL: "https://youtube.com/watch?v=" + title,
		})
	}
	return c
}

func partialTitle(title string) models.ArticleUpdate {
	return models.ArticleUpdate{Title: &title}
}

func articleFixture(title string) models.ArticleCreate {
	return models.ArticleCreate{
		Title:    title,
		Author:   "Pastor John Doe",
		Category: "Christian Living",
		Content:  "Forgiveness releases the one who forgives as much as the one forgiven.",
	}
}
