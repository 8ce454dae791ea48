// ================== cmd/api/main.go ==================
//
// @title Todo API
// @version 1.0
// @description REST API for todo items stored in MongoDB
// @host localhost:8080
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xyz-asif/todo-mongo/docs"
	"github.com/xyz-asif/todo-mongo/internal/config"
	"github.com/xyz-asif/todo-mongo/internal/database"
	"github.com/xyz-asif/todo-mongo/internal/middleware"
	"github.com/xyz-asif/todo-mongo/internal/pkg/logger"
	"github.com/xyz-asif/todo-mongo/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("%v, using INFO", err)
	}
	logger.SetGlobalLevel(level)

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	// The client connects lazily; a bad URI host only shows up on first query.
	db, err := database.Connect(database.FromSettings(cfg.Database))
	if err != nil {
		logger.Fatal("Failed to create MongoDB client: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Disconnect(ctx); err != nil {
			logger.Error("MongoDB disconnect: %v", err)
		}
	}()

	if err := db.Ping(context.Background()); err != nil {
		logger.Warn("MongoDB not reachable yet (%s): %v", cfg.Database.DatabaseName, err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	routes.Health(router, db)

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("list"),
		),
	)

	routes.SetupRoutes(router, db.Database)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting on port %s (db %s)", cfg.Port, cfg.Database.DatabaseName)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
