package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/todo-mongo/internal/features/todos"
	"github.com/xyz-asif/todo-mongo/internal/pkg/response"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func SetupRoutes(router *gin.Engine, db *mongo.Database) {
	api := router.Group("/api")

	todos.RegisterRoutes(api, db)
}

// Health registers GET /health backed by store.
func Health(router *gin.Engine, store Pinger) {
	router.GET("/health", func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			response.ServiceUnavailable(c, "Database unreachable", "DATABASE_UNAVAILABLE")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": "ok",
			"time":     time.Now().Unix(),
		})
	})
}
