package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GeetAtGit/ReportVerse/internal/app/controllers"
	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	mentorshipController *controllers.MentorshipController,
	issueController *controllers.IssueController,
	achievementController *controllers.AchievementController,
	academicController *controllers.AcademicController,
	dashboardController *controllers.DashboardController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// Health is public so load balancers can probe without credentials
	api.GET("/health", healthController.Health)

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register/mentor", authController.RegisterMentor)
		auth.POST("/register/mentee", authController.RegisterMentee)
		auth.POST("/login", authController.Login)
		auth.GET("/me", authMiddleware.JWTAuth(), authController.Me)
	}

	// --- Mentee routes ---
	mentee := api.Group("/mentee")
	mentee.Use(authMiddleware.JWTAuth())
	mentee.Use(authMiddleware.RoleRequired(models.RoleMentee))
	{
		mentee.PUT("/profile", authController.UpdateProfile)
		mentee.GET("/dashboard", dashboardController.MenteeDashboard)

		issues := mentee.Group("/issues")
		{
			issues.POST("", issueController.Create)
			issues.GET("", issueController.List)
			issues.GET("/:id", issueController.Get)
			issues.POST("/:id/comments", issueController.AddComment)
		}

		achievements := mentee.Group("/achievements")
		{
			achievements.POST("", achievementController.Create)
			achievements.GET("", achievementController.List)
		}

		academics := mentee.Group("/academics")
		{
			academics.GET("", academicController.Get)
			academics.PUT("", academicController.Update)
			academics.POST("/marksheets", academicController.UploadMarksheet)
		}
	}

	// --- Mentor routes ---
	mentor := api.Group("/mentor")
	mentor.Use(authMiddleware.JWTAuth())
	mentor.Use(authMiddleware.RoleRequired(models.RoleMentor))
	{
		mentor.GET("/dashboard", dashboardController.MentorDashboard)

		mentees := mentor.Group("/mentees")
		{
			mentees.POST("/assign", mentorshipController.AssignMentee)
			mentees.GET("", mentorshipController.ListMentees)
			mentees.GET("/:id", mentorshipController.GetMenteeDetail)
		}

		issues := mentor.Group("/issues")
		{
			issues.GET("", issueController.List)
			issues.GET("/:id", issueController.Get)
			issues.POST("/:id/comment", issueController.AddComment)
		}

		achievements := mentor.Group("/achievements")
		{
			achievements.POST("", achievementController.Create)
			achievements.GET("", achievementController.List)
		}
	}
}
