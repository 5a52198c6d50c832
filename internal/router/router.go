package router

import (
	"time"

	"github.com/campusbridge/campusbridge/internal/handlers"
	"github.com/campusbridge/campusbridge/internal/middleware"
	"github.com/campusbridge/campusbridge/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/notifications", middleware.AuthMiddleware(), handlers.NotificationsFeed)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		// Reference-id verification is part of the signup flow, before
		// the caller has an account.
		api.POST("/reference/verify", handlers.VerifyReference)

		profiles := api.Group("/profiles", middleware.AuthMiddleware())
		{
			profiles.GET("/student/me", handlers.GetStudentProfile)
			profiles.PUT("/student/me", handlers.SaveStudentProfile)
			profiles.GET("/alumni/me", handlers.GetAlumniProfile)
			profiles.PUT("/alumni/me", handlers.SaveAlumniProfile)
		}

		directory := api.Group("/directory", middleware.AuthMiddleware())
		{
			directory.GET("/students", handlers.ListStudentDirectory)
			directory.GET("/alumni", handlers.ListAlumniDirectory)
		}

		ideas := api.Group("/ideas", middleware.AuthMiddleware())
		{
			ideas.POST("", handlers.CreateIdea)
			ideas.GET("", handlers.ListIdeas)
			ideas.GET("/mine", handlers.ListMyIdeas)
			ideas.GET("/:idea_id", handlers.GetIdea)
			ideas.POST("/:idea_id/nda", handlers.RequestNda)
			ideas.POST("/:idea_id/connections", handlers.Connect)
		}

		forum := api.Group("/forum", middleware.AuthMiddleware())
		{
			forum.POST("/questions", handlers.CreateQuestion)
			forum.GET("/questions", handlers.ListQuestions)
			forum.POST("/questions/:question_id/view", handlers.ViewQuestion)
			forum.POST("/questions/:question_id/answers", handlers.CreateAnswer)
			forum.DELETE("/questions/:question_id", handlers.DeleteQuestion)
			forum.POST("/answers/:answer_id/best", handlers.MarkBestAnswer)
			forum.DELETE("/answers/:answer_id", handlers.DeleteAnswer)
		}

		timetables := api.Group("/timetables", middleware.AuthMiddleware())
		{
			timetables.GET("", handlers.ListTimetables)
			timetables.POST("", handlers.CreateTimetable)
			timetables.POST("/generate", handlers.GenerateTimetable)
			timetables.DELETE("/:timetable_id", handlers.DeleteTimetable)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware())
		{
			projects.POST("", handlers.SubmitProject)
			projects.GET("", handlers.ListMyProjects)
		}

		notifications := api.Group("/notifications", middleware.AuthMiddleware())
		{
			notifications.GET("", handlers.ListNotifications)
			notifications.PATCH("/:notification_id/read", handlers.MarkNotificationRead)
		}

		admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.POST("/reference-ids", handlers.CreateReference)
			admin.GET("/reference-ids", handlers.ListReferences)
			admin.GET("/projects/pending", handlers.ListPendingProjects)
			admin.PATCH("/projects/:project_id", handlers.ReviewProject)
		}
	}

	return r
}
