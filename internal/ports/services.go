package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todolist"
)

// ListService defines the service port for todo list operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Lookups report absence through a found flag rather than domain.ErrNotFound;
// handlers decide how absence is surfaced.
type ListService interface {
	// ListLists returns every list in store order.
	ListLists(ctx context.Context) ([]todolist.TodoList, error)

	// GetList returns the list with the given ID, or found == false.
	GetList(ctx context.Context, id int64) (list todolist.TodoList, found bool, err error)

	// CreateList validates and persists a new list and returns it with
	// server-assigned fields (ID, timestamps).
	// Returns domain.ErrValidation if the draft fails validation.
	CreateList(ctx context.Context, draft todolist.Draft) (todolist.TodoList, error)

	// UpdateList overwrites the supplied fields, refreshes UpdatedAt and
	// returns the persisted list, or found == false if it does not exist.
	UpdateList(ctx context.Context, id int64, patch todolist.Patch) (list todolist.TodoList, found bool, err error)

	// DeleteList removes the list and its items and reports whether it existed.
	DeleteList(ctx context.Context, id int64) (bool, error)
}

// ItemService defines the service port for todo item operations.
// Every item lookup is scoped by both the list ID and the item ID.
type ItemService interface {
	// ListItems returns the items of a list. An unknown list yields an empty slice.
	ListItems(ctx context.Context, listID int64) ([]todoitem.TodoItem, error)

	// GetItem returns the item, or found == false if no item with itemID
	// belongs to listID.
	GetItem(ctx context.Context, listID, itemID int64) (item todoitem.TodoItem, found bool, err error)

	// CreateItem persists a new NOT_COMPLETED item under listID.
	// Returns domain.ErrValidation if the draft fails validation.
	CreateItem(ctx context.Context, listID int64, draft todoitem.Draft) (todoitem.TodoItem, error)

	// UpdateItem applies the patch, deriving status from its complete flag.
	UpdateItem(ctx context.Context, listID, itemID int64, patch todoitem.Patch) (
		item todoitem.TodoItem, found bool, err error)

	// DeleteItem removes the item and reports whether it existed under listID.
	DeleteItem(ctx context.Context, listID, itemID int64) (bool, error)
}
