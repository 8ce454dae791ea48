// ================== internal/features/todos/model.go ==================
package todos

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/xyz-asif/todo-mongo/pkg/errors"
)

// CollectionName is the collection holding every TodoItem.
const CollectionName = "TodoItems"

// TodoItem represents a todo item
// @Description Todo item stored in the TodoItems collection
type TodoItem struct {
	ID         primitive.ObjectID `bson:"_id" json:"id" example:"507f1f77bcf86cd799439011" swaggertype:"string"`
	Name       string             `bson:"name" json:"name" example:"buy milk"`
	IsComplete bool               `bson:"isComplete" json:"isComplete" example:"false"`
}

// IDGenerator hands out new document ids.
type IDGenerator func() primitive.ObjectID

// NewObjectID is the production IDGenerator.
func NewObjectID() primitive.ObjectID {
	return primitive.NewObjectID()
}

// NewTodoItem builds an item with a fresh id from gen.
func NewTodoItem(gen IDGenerator, name string, isComplete bool) TodoItem {
	item := TodoItem{Name: name, IsComplete: isComplete}
	item.EnsureID(gen)
	return item
}

// EnsureID assigns an id from gen when none is set. An existing id is kept.
func (t *TodoItem) EnsureID(gen IDGenerator) {
	if !t.ID.IsZero() {
		return
	}
	if gen == nil {
		gen = NewObjectID
	}
	t.ID = gen()
}

// ParseID decodes a 24 character hex id.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", apperrors.ErrInvalidID, hex)
	}
	return id, nil
}
