package todos

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/xyz-asif/todo-mongo/pkg/errors"
)

// Store is the data access the handler needs. *Repository implements it.
type Store interface {
	List(ctx context.Context) ([]TodoItem, error)
	Get(ctx context.Context, id primitive.ObjectID) (*TodoItem, error)
	Create(ctx context.Context, item *TodoItem) error
	Replace(ctx context.Context, id primitive.ObjectID, item *TodoItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Repository owns the TodoItems collection handle. It is safe for concurrent use.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return NewRepositoryWithCollection(db.Collection(CollectionName))
}

func NewRepositoryWithCollection(collection *mongo.Collection) *Repository {
	return &Repository{collection: collection}
}

func (r *Repository) List(ctx context.Context) ([]TodoItem, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find todos: %w", err)
	}
	defer cursor.Close(ctx)

	var items []TodoItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}

	if items == nil {
		items = []TodoItem{}
	}

	return items, nil
}

func (r *Repository) Get(ctx context.Context, id primitive.ObjectID) (*TodoItem, error) {
	var item TodoItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find todo %s: %w", id.Hex(), err)
	}

	return &item, nil
}

// Create inserts item as given. A caller-supplied id that already exists fails
// in the store as a duplicate key error.
func (r *Repository) Create(ctx context.Context, item *TodoItem) error {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert todo %s: %w: %w", item.ID.Hex(), apperrors.ErrDuplicate, err)
		}
		return fmt.Errorf("insert todo: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

// Replace overwrites the whole document stored under id.
func (r *Repository) Replace(ctx context.Context, id primitive.ObjectID, item *TodoItem) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, item)
	if err != nil {
		return fmt.Errorf("replace todo %s: %w", id.Hex(), err)
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete todo %s: %w", id.Hex(), err)
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
