// ================== internal/features/todos/handler.go ==================
package todos

import (
	"path"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/todo-mongo/internal/pkg/logger"
	"github.com/xyz-asif/todo-mongo/internal/pkg/response"
	apperrors "github.com/xyz-asif/todo-mongo/pkg/errors"
)

type Handler struct {
	store Store
	newID IDGenerator
}

func NewHandler(store Store, newID IDGenerator) *Handler {
	if newID == nil {
		newID = NewObjectID
	}
	return &Handler{store: store, newID: newID}
}

// List godoc
// @Summary List todos
// @Description Get every todo item, in store order
// @Tags todo
// @Produce json
// @Success 200 {array} TodoItem
// @Failure 500 {object} response.ErrorResponse
// @Router /todo [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error("list todos: %v", err)
		response.DatabaseError(c, "Failed to get todos")
		return
	}

	response.OK(c, items)
}

// Get godoc
// @Summary Get a todo by ID
// @Tags todo
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} TodoItem
// @Failure 400 {object} response.ErrorResponse
// @Failure 404
// @Router /todo/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	item, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "Failed to get todo")
		return
	}

	response.OK(c, item)
}

// Create godoc
// @Summary Create a todo
// @Description Insert a todo item. An id is generated when the body has none.
// @Tags todo
// @Accept json
// @Produce json
// @Param request body TodoItem true "Todo item"
// @Success 201 {object} TodoItem
// @Header 201 {string} Location "/api/todo/{id}"
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /todo [post]
func (h *Handler) Create(c *gin.Context) {
	var item TodoItem
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BindJSONError(c, err)
		return
	}

	item.EnsureID(h.newID)

	if err := h.store.Create(c.Request.Context(), &item); err != nil {
		logger.Error("create todo: %v", err)
		response.DatabaseError(c, "Failed to create todo")
		return
	}

	response.Created(c, path.Join(c.Request.URL.Path, item.ID.Hex()), item)
}

// Update godoc
// @Summary Replace a todo
// @Description Overwrite every field of the todo stored under id
// @Tags todo
// @Accept json
// @Param id path string true "Todo ID"
// @Param request body TodoItem true "Todo item"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404
// @Router /todo/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var item TodoItem
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BindJSONError(c, err)
		return
	}

	// _id is immutable; the stored id is always the one in the path
	item.ID = id

	if err := h.store.Replace(c.Request.Context(), id, &item); err != nil {
		h.storeError(c, err, "Failed to update todo")
		return
	}

	response.NoContent(c)
}

// Delete godoc
// @Summary Delete a todo
// @Tags todo
// @Param id path string true "Todo ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404
// @Router /todo/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.storeError(c, err, "Failed to delete todo")
		return
	}

	response.NoContent(c)
}

func (h *Handler) pathID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := ParseID(c.Param("id"))
	if err != nil {
		response.InvalidID(c)
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler) storeError(c *gin.Context, err error, message string) {
	if apperrors.Is(err, apperrors.ErrNotFound) {
		response.NotFound(c)
		return
	}
	logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	response.DatabaseError(c, message)
}
