package routes

import (
	"stayhub/controllers"
	middlewares "stayhub/middleware"
	"stayhub/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	router.Static("/static", "./static")

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/auth/forgot-password", controllers.ForgotPassword)

	v1.GET("/users/me", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/rooms", controllers.GetAllRooms)
	v1.GET("/rooms/search", middlewares.AuthMiddleware(), controllers.SearchRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.POST("/rooms", middlewares.AuthMiddleware(models.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(models.RoleAdmin), controllers.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(models.RoleAdmin), controllers.DeleteRoom)
	v1.GET("/admin/rooms", middlewares.AuthMiddleware(models.RoleAdmin), controllers.GetAllRoomsAdmin)

	v1.POST("/bookings", middlewares.AuthMiddleware(), controllers.CreateBooking)
	v1.GET("/bookings", middlewares.AuthMiddleware(), controllers.GetBookings)
	v1.PUT("/bookings/:id/modify", middlewares.AuthMiddleware(), controllers.ModifyBooking)
	v1.POST("/bookings/:id/cancel", middlewares.AuthMiddleware(), controllers.CancelBooking)
	v1.GET("/bookings/:id/history", middlewares.AuthMiddleware(), controllers.GetBookingHistory)

	v1.POST("/reviews", middlewares.AuthMiddleware(), controllers.CreateReview)
	v1.GET("/reviews/room/:id", controllers.GetRoomReviews)
	v1.GET("/reviews/me", middlewares.AuthMiddleware(), controllers.GetMyReviews)
	v1.PUT("/reviews/:id/moderate", middlewares.AuthMiddleware(models.RoleAdmin), controllers.ModerateReview)

	v1.POST("/availability", middlewares.AuthMiddleware(), controllers.SetAvailability)
	v1.GET("/availability/room/:id", controllers.GetRoomAvailability)
	v1.PUT("/availability/room/:id/date/:date", middlewares.AuthMiddleware(), controllers.UpdateDateAvailability)
	v1.POST("/availability/room/:id/block", middlewares.AuthMiddleware(), controllers.BlockDates)
}
