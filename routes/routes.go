package routes

import (
	"Friender/controllers"
	"Friender/middleware"
	"Friender/services/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, uploader storage.Uploader) {
	// Identity
	router.POST("/signup", controllers.SignUp(db))
	router.POST("/login", controllers.Login(db))
	router.PATCH("/profile", controllers.UpdateProfile(db, uploader))
	router.GET("/cards", controllers.ListCards(db))

	// Swipes
	router.POST("/like", controllers.LikeUser(db))
	router.POST("/dislike", controllers.DislikeUser(db))
	router.GET("/alllikes/:username", controllers.AllLikes(db))
	router.GET("/alldislikes/:username", controllers.AllDislikes(db))
	router.GET("/allmatches/:username", controllers.AllMatches(db))

	// Routes that require authentication
	authenticated := router.Group("/auth")
	authenticated.Use(middleware.AuthRequired)
	{
		authenticated.GET("/me", controllers.Me(db))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
