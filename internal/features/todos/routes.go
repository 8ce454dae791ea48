// ================== internal/features/todos/routes.go ==================
package todos

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	repo := NewRepository(db)
	handler := NewHandler(repo, NewObjectID)

	Mount(router, handler)
}

// Mount attaches handler under /todo on router.
func Mount(router *gin.RouterGroup, handler *Handler) {
	todo := router.Group("/todo")
	{
		todo.GET("", handler.List)
		todo.POST("", handler.Create)
		todo.GET("/:id", handler.Get)
		todo.PUT("/:id", handler.Update)
		todo.DELETE("/:id", handler.Delete)
	}
}
