package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todolist"
)

// ListStore is the persistence port for todo lists.
// Implemented by outbound adapters (sqlstore); called by the application layer.
// Reads report absence with found == false and never with an error.
type ListStore interface {
	// All returns every list ordered by ID.
	All(ctx context.Context) ([]todolist.TodoList, error)

	// Find returns the list with the given ID.
	Find(ctx context.Context, id int64) (list todolist.TodoList, found bool, err error)

	// Insert persists l and returns the stored row, including its new ID.
	Insert(ctx context.Context, l todolist.TodoList) (todolist.TodoList, error)

	// Update writes only the fields set in patch plus updated_at = at,
	// then returns the stored row.
	Update(ctx context.Context, id int64, patch todolist.Patch, at time.Time) (
		list todolist.TodoList, found bool, err error)

	// Delete removes the list and every item that belongs to it in one
	// transaction, and reports whether the list existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// ItemStore is the persistence port for todo items.
type ItemStore interface {
	// AllForList returns the items whose list ID matches, ordered by ID.
	AllForList(ctx context.Context, listID int64) ([]todoitem.TodoItem, error)

	// Find returns the item matching both IDs.
	Find(ctx context.Context, listID, itemID int64) (item todoitem.TodoItem, found bool, err error)

	// Insert persists i and returns the stored row, including its new ID.
	Insert(ctx context.Context, i todoitem.TodoItem) (todoitem.TodoItem, error)

	// Update writes only the columns set in changes plus updated_at,
	// then returns the stored row.
	Update(ctx context.Context, listID, itemID int64, changes todoitem.Changes) (
		item todoitem.TodoItem, found bool, err error)

	// Delete removes the item matching both IDs and reports whether it existed.
	Delete(ctx context.Context, listID, itemID int64) (bool, error)
}
