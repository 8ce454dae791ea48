package todos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/xyz-asif/todo-mongo/pkg/errors"
)

func TestEnsureID_AssignsWhenMissing(t *testing.T) {
	gen := sequentialIDs()

	var item TodoItem
	item.EnsureID(gen)
	require.Equal(t, "000000000000000000000001", item.ID.Hex())
}

func TestEnsureID_KeepsExisting(t *testing.T) {
	existing := primitive.NewObjectID()
	item := TodoItem{ID: existing}

	item.EnsureID(func() primitive.ObjectID {
		t.Fatal("generator must not be called when an id is set")
		return primitive.NilObjectID
	})
	require.Equal(t, existing, item.ID)
}

func TestEnsureID_NilGeneratorFallsBack(t *testing.T) {
	var item TodoItem
	item.EnsureID(nil)
	require.False(t, item.ID.IsZero())
}

func TestNewTodoItem(t *testing.T) {
	item := NewTodoItem(sequentialIDs(), "buy milk", true)
	require.Equal(t, "000000000000000000000001", item.ID.Hex())
	require.Equal(t, "buy milk", item.Name)
	require.True(t, item.IsComplete)
}

func TestNewObjectID_Unique(t *testing.T) {
	seen := make(map[primitive.ObjectID]struct{})
	for i := 0; i < 1000; i++ {
		id := NewObjectID()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestTodoItem_JSONShape(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	b, err := json.Marshal(TodoItem{ID: id, Name: "buy milk"})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"507f1f77bcf86cd799439011","name":"buy milk","isComplete":false}`, string(b))

	var decoded TodoItem
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","isComplete":true}`), &decoded))
	require.True(t, decoded.ID.IsZero())
	require.True(t, decoded.IsComplete)
}

func TestTodoItem_BSONUsesObjectID(t *testing.T) {
	item := NewTodoItem(sequentialIDs(), "buy milk", false)

	raw, err := bson.Marshal(item)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	require.IsType(t, primitive.ObjectID{}, doc["_id"])
	require.Equal(t, "buy milk", doc["name"])
	require.Equal(t, false, doc["isComplete"])
}

func TestParseID(t *testing.T) {
	id, err := ParseID("000000000000000000000000")
	require.NoError(t, err)
	require.True(t, id.IsZero())

	id, err = ParseID("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	require.Equal(t, "507f1f77bcf86cd799439011", id.Hex())

	for _, bad := range []string{"", "abc", "507f1f77bcf86cd79943901z", "507f1f77bcf86cd7994390110"} {
		_, err := ParseID(bad)
		require.ErrorIs(t, err, apperrors.ErrInvalidID, bad)
	}
}
