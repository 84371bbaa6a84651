package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain"
	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todolist"
)

// CreateListRequest represents the JSON body for creating a todo list.
type CreateListRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// ToDraft converts the request to a domain draft.
func (r *CreateListRequest) ToDraft() todolist.Draft {
	return todolist.Draft{
		Title:       r.Title,
		Description: r.Description,
	}
}

// UpdateListRequest represents the JSON body for a partial list update.
// A field that is absent or null is left unchanged.
type UpdateListRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateListRequest) ToPatch() todolist.Patch {
	return todolist.Patch{
		Title:       domain.FromPtr(r.Title),
		Description: domain.FromPtr(r.Description),
	}
}

// CreateItemRequest represents the JSON body for creating a todo item.
// Status is not accepted: new items always start NOT_COMPLETED.
type CreateItemRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueAt       *time.Time `json:"due_at"`
}

// ToDraft converts the request to a domain draft.
func (r *CreateItemRequest) ToDraft() todoitem.Draft {
	return todoitem.Draft{
		Title:       r.Title,
		Description: r.Description,
		DueAt:       normalizeTime(r.DueAt),
	}
}

// UpdateItemRequest represents the JSON body for a partial item update.
// Complete drives the item status; a field that is absent or null is left
// unchanged.
type UpdateItemRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueAt       *time.Time `json:"due_at"`
	Complete    *bool      `json:"complete"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateItemRequest) ToPatch() todoitem.Patch {
	return todoitem.Patch{
		Title:       domain.FromPtr(r.Title),
		Description: domain.FromPtr(r.Description),
		DueAt:       domain.FromPtr(normalizeTime(r.DueAt)),
		Complete:    domain.FromPtr(r.Complete),
	}
}

// normalizeTime converts t to UTC at the microsecond precision the store keeps.
func normalizeTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := t.UTC().Truncate(time.Microsecond)
	return &n
}
