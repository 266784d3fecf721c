package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/FaithPortal/content"
	"github.com/FaithPortal/controllers"
	"github.com/FaithPortal/initializers"
	"github.com/FaithPortal/middlewares"
	"github.com/FaithPortal/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectStore()
	services.InitEmailService()
}

func main() {
	router := gin.Default()

	controllers.SetContentService(content.NewService(initializers.Store))
	if initializers.Auth != nil {
		middlewares.SetTokenVerifier(initializers.Auth)
	}

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.GET("/ping", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Ping)

	// public content routes
	public := router.Group("/")
	public.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{
		public.GET("/articles", controllers.GetArticles)
		public.GET("/articles/:article_id", controllers.GetArticle)
		public.GET("/articles/slug/:slug", controllers.GetArticleBySlug)

		public.GET("/videos", controllers.GetVideos)
		public.GET("/videos/:video_id", controllers.GetVideo)

		public.GET("/courses", controllers.GetCourses)
		public.GET("/courses/:course_id", controllers.GetCourse)
		public.GET("/courses/:course_id/lessons", controllers.GetCourseLessons)

		public.GET("/audios", controllers.GetAudioFiles)
		public.GET("/live-meetings", controllers.GetLiveMeetings)
		public.GET("/verse-of-the-day", controllers.GetVerseOfTheDay)
	}

	// public submission routes, throttled harder
	router.POST("/subscribe", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Subscribe)
	router.POST("/prayer-requests", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.CreatePrayerRequest)

	// admin console routes
	admin := router.Group("/admin")
	admin.Use(middlewares.CheckAuth)
	admin.Use(middlewares.CheckAdmin)
	admin.Use(middlewares.RateLimitMiddleware(5, 5, getKey))
	{
		admin.POST("/articles", controllers.CreateArticle)
		admin.PATCH("/articles/:article_id", controllers.UpdateArticle)

		admin.POST("/videos", controllers.CreateVideo)
		admin.POST("/courses", controllers.CreateCourse)
		admin.POST("/audios", controllers.CreateAudioFile)
		admin.POST("/live-meetings", controllers.CreateLiveMeeting)
		admin.PUT("/verse-of-the-day", controllers.SetVerseOfTheDay)

		admin.GET("/subscribers", controllers.GetSubscribers)
		admin.GET("/prayer-requests", controllers.GetPrayerRequests)
		admin.PATCH("/prayer-requests/:request_id/read", controllers.MarkPrayerRequestRead)
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
