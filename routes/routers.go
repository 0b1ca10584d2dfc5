package routes

import (
	"altairis/controllers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	controllers.InitControllers(db, redisCli)

	v1 := router.Group("/api/v1")

	v1.GET("/hotels", controllers.GetHotels)
	v1.POST("/hotels", controllers.CreateHotel)
	v1.GET("/hotels/search", controllers.SearchHotels)
	v1.GET("/hotels/countries", controllers.GetCountries)
	v1.GET("/hotels/:id", controllers.GetDetailHotel)
	v1.PUT("/hotels/:id", controllers.UpdateHotel)
	v1.DELETE("/hotels/:id", controllers.DeleteHotel)
	v1.GET("/hotels/:id/inventory", controllers.GetHotelInventory)
	v1.GET("/hotels/:id/occupancy", controllers.GetOccupancyStats)

	v1.GET("/roomTypes", controllers.GetRoomTypes)
	v1.POST("/roomTypes", controllers.CreateRoomType)
	v1.GET("/roomTypes/:id", controllers.GetDetailRoomType)
	v1.PUT("/roomTypes/:id", controllers.UpdateRoomType)
	v1.DELETE("/roomTypes/:id", controllers.DeleteRoomType)
	v1.GET("/roomTypes/:id/inventory", controllers.GetRoomTypeInventory)
	v1.POST("/roomTypes/:id/inventory/init", controllers.InitializeInventory)

	v1.PUT("/inventory/:id", controllers.UpdateInventory)
	v1.PUT("/inventoryBulk", controllers.BulkUpdateInventory)

	v1.GET("/bookings", controllers.GetBookings)
	v1.POST("/bookings", controllers.CreateBooking)
	v1.GET("/bookings/number/:number", controllers.GetBookingByNumber)
	v1.GET("/bookings/:id", controllers.GetDetailBooking)
	v1.PUT("/bookings/:id/status", controllers.UpdateBookingStatus)

	v1.GET("/stats/dashboard", controllers.GetDashboardStats)

	v1.GET("/health", controllers.HealthCheck)
	v1.GET("/health/database", controllers.DatabaseHealth)
}
