// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	userRepo "fairway/database/repository/user"
	"fairway/handlers"
	"fairway/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers and the repositories middleware needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth      *handlers.AuthHandler
	Courses   *handlers.CourseHandler
	Regions   *handlers.RegionHandler
	Users     *handlers.UserHandler
	Quotes    *handlers.QuotationHandler
	Inventory *handlers.InventoryHandler
}

// RegisterAuthRoutes registers the public signin endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterCourseRoutes registers course reference-data endpoints.
func RegisterCourseRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/courses")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("", hb.Courses.ListCoursesHandler)
		api.GET("/:courseID", hb.Courses.GetCourseHandler)

		// Mutations are reserved for site-wide administrators.
		protected := api.Group("")
		protected.Use(middleware.RequireRoles("super_admin", "site_admin"))
		protected.POST("", hb.Courses.CreateCourseHandler)
		protected.PUT("/:courseID", hb.Courses.UpdateCourseHandler)
		protected.DELETE("/:courseID", hb.Courses.DeleteCourseHandler)
	}
}

// RegisterRegionRoutes registers the country/province/city endpoints.
func RegisterRegionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/regions")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("/countries", hb.Regions.ListCountriesHandler)
		api.GET("/countries/:countryID/provinces", hb.Regions.ListProvincesHandler)
		api.GET("/provinces/:provinceID/cities", hb.Regions.ListCitiesHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireSuperAdmin())
		protected.POST("", hb.Regions.CreateRegionHandler)
		protected.DELETE("/:regionID", hb.Regions.DeleteRegionHandler)
	}
}

// RegisterUserRoutes registers operator administration endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	api.Use(middleware.RequireRoles("super_admin", "site_admin"))
	{
		api.GET("", hb.Users.ListUsersHandler)
		api.GET("/:userID", hb.Users.GetUserHandler)
		api.POST("", hb.Users.CreateUserHandler)
		api.PUT("/:userID", hb.Users.UpdateUserHandler)
		api.DELETE("/:userID", hb.Users.DeleteUserHandler)
	}
}

// RegisterQuotationRoutes registers quotation endpoints.
func RegisterQuotationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/quotations")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	api.Use(middleware.RequireAdmin())
	{
		api.GET("", hb.Quotes.ListQuotationsHandler)
		api.GET("/:quotationID", hb.Quotes.GetQuotationHandler)
		api.POST("", hb.Quotes.CreateQuotationHandler)
		api.DELETE("/:quotationID", hb.Quotes.DeleteQuotationHandler)
	}
}

// RegisterInventoryRoutes registers the tee-time inventory screen endpoints.
func RegisterInventoryRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/inventory")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	api.Use(middleware.RequireAdmin())
	{
		api.GET("/courses", hb.Inventory.VisibleCoursesHandler)
		api.POST("/select", hb.Inventory.SelectCourseHandler)
		api.POST("/refresh", hb.Inventory.RefreshHandler)
		api.GET("/calendar", hb.Inventory.CalendarHandler)
		api.POST("/click", hb.Inventory.DateClickHandler)
		api.POST("/editor/submit", hb.Inventory.SubmitHandler)
		api.POST("/editor/edit/:teeTimeID", hb.Inventory.StartEditHandler)
		api.POST("/editor/cancel", hb.Inventory.CancelEditorHandler)
		api.DELETE("/teetimes/:teeTimeID", hb.Inventory.DeleteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Fairway"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCourseRoutes(r, hb)
	RegisterRegionRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterQuotationRoutes(r, hb)
	RegisterInventoryRoutes(r, hb)
}
