package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the route table. Reads on the catalog
// are public; everything else sits behind the bearer-token middleware, and
// admin routes behind the role gate on top of that.
func SetupRouter(
	db *gorm.DB,
	uc *controllers.UserController,
	hc *controllers.HostelController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	ac *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protect := middleware.Protect(db)
	adminOnly := middleware.AdminOnly()

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", uc.Register)
			users.POST("/login", uc.Login)
			users.GET("/profile", protect, uc.GetProfile)
			users.PUT("/profile", protect, uc.UpdateProfile)
		}

		hostels := api.Group("/hostels")
		{
			hostels.GET("", hc.GetHostels)
			hostels.GET("/:id", hc.GetHostel)
			hostels.POST("", protect, adminOnly, hc.CreateHostel)
			hostels.PUT("/:id", protect, adminOnly, hc.UpdateHostel)
			hostels.DELETE("/:id", protect, adminOnly, hc.DeleteHostel)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)

			// must stay ahead of /:id
			rooms.GET("/available", rc.GetAvailableRooms)

			rooms.GET("/:id", rc.GetRoom)
			rooms.POST("", protect, adminOnly, rc.CreateRoom)
			rooms.PUT("/:id", protect, adminOnly, rc.UpdateRoom)
			rooms.DELETE("/:id", protect, adminOnly, rc.DeleteRoom)
		}

		bookings := api.Group("/bookings", protect)
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.PUT("/:id/cancel", bc.CancelBooking)
		}

		admin := api.Group("/admin", protect, adminOnly)
		{
			admin.GET("/users", ac.GetUsers)
			admin.PUT("/users/:id/role", ac.UpdateUserRole)
			admin.DELETE("/users/:id", ac.DeleteUser)
			admin.GET("/dashboard", ac.GetDashboard)
		}
	}

	return r
}
