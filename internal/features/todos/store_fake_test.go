package todos

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/xyz-asif/todo-mongo/pkg/errors"
)

// memoryStore is an in-process Store keyed by id, kept in insertion order.
type memoryStore struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	items map[primitive.ObjectID]TodoItem
	err   error

	lastCtx context.Context
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: make(map[primitive.ObjectID]TodoItem)}
}

var errStoreDown = errors.New("connection refused")

// check records ctx and fails like the driver does once ctx is done.
// Callers hold s.mu.
func (s *memoryStore) check(ctx context.Context) error {
	s.lastCtx = ctx
	if s.err != nil {
		return s.err
	}
	return ctx.Err()
}

func (s *memoryStore) seenCtx() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCtx
}

func (s *memoryStore) List(ctx context.Context) ([]TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	items := make([]TodoItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items, nil
}

func (s *memoryStore) Get(ctx context.Context, id primitive.ObjectID) (*TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	item, ok := s.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &item, nil
}

func (s *memoryStore) Create(ctx context.Context, item *TodoItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	if _, ok := s.items[item.ID]; ok {
		return apperrors.ErrDuplicate
	}
	s.items[item.ID] = *item
	s.order = append(s.order, item.ID)
	return nil
}

func (s *memoryStore) Replace(ctx context.Context, id primitive.ObjectID, item *TodoItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	if _, ok := s.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	s.items[id] = *item
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	if _, ok := s.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *memoryStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// sequentialIDs returns a generator yielding 000...001, 000...002, ...
func sequentialIDs() IDGenerator {
	var mu sync.Mutex
	var n byte
	return func() primitive.ObjectID {
		mu.Lock()
		defer mu.Unlock()
		n++
		var id primitive.ObjectID
		id[11] = n
		return id
	}
}
