// File: fairway/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fairway/config"
	"fairway/database"
	courseRepoPkg "fairway/database/repository/course"
	quotationRepoPkg "fairway/database/repository/quotation"
	regionRepoPkg "fairway/database/repository/region"
	teetimeRepoPkg "fairway/database/repository/teetime"
	userRepoPkg "fairway/database/repository/user"
	"fairway/handlers"
	"fairway/middleware"
	"fairway/routes"
	"fairway/services/course"
	"fairway/services/inventory"
	"fairway/services/quotation"
	"fairway/services/region"
	"fairway/services/user"
	"fairway/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	teeTimeRepo := teetimeRepoPkg.NewMongoTeeTimeRepo()
	courseRepo := courseRepoPkg.NewMongoCourseRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	regionRepo := regionRepoPkg.NewMongoRegionRepo()
	quotationRepo := quotationRepoPkg.NewMongoQuotationRepo()

	for _, ensure := range []func() error{
		teeTimeRepo.EnsureIndexes,
		courseRepo.EnsureIndexes,
		userRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	clock := utils.SystemClock{}

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	courseService := &course.DefaultCourseService{
		Repo:  courseRepo,
		Cache: utils.GetCacheClient(),
	}
	regionService := &region.DefaultRegionService{Repo: regionRepo}
	quotationService := &quotation.DefaultQuotationService{
		Repo:    quotationRepo,
		Courses: courseRepo,
	}
	inventoryService := &inventory.DefaultInventoryService{
		Repo:    teeTimeRepo,
		Courses: courseRepo,
		Clock:   clock,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		UserRepo:  userRepo,
		Auth:      handlers.NewAuthHandler(userService),
		Courses:   handlers.NewCourseHandler(courseService),
		Regions:   handlers.NewRegionHandler(regionService),
		Users:     handlers.NewUserHandler(userService),
		Quotes:    handlers.NewQuotationHandler(quotationService),
		Inventory: handlers.NewInventoryHandler(inventoryService, courseRepo, clock),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
