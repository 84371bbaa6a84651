// Package dto provides HTTP request/response data transfer objects, JSON
// Schema request validation and RFC 9457 Problem Details error responses for
// the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todolist"
)

// ListResponse represents a single todo list in HTTP responses.
// Description renders as null when unset.
type ListResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToListResponse converts a domain TodoList to an HTTP response DTO.
func ToListResponse(l *todolist.TodoList) ListResponse {
	return ListResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		CreatedAt:   formatTime(l.CreatedAt),
		UpdatedAt:   formatTime(l.UpdatedAt),
	}
}

// ToListResponses converts lists to response DTOs. The result is never nil
// so an empty collection encodes as [].
func ToListResponses(lists []todolist.TodoList) []ListResponse {
	out := make([]ListResponse, len(lists))
	for i := range lists {
		out[i] = ToListResponse(&lists[i])
	}
	return out
}

// ItemResponse represents a single todo item in HTTP responses.
type ItemResponse struct {
	ID          int64   `json:"id"`
	ListID      int64   `json:"list_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueAt       *string `json:"due_at"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToItemResponse converts a domain TodoItem to an HTTP response DTO.
func ToItemResponse(i *todoitem.TodoItem) ItemResponse {
	resp := ItemResponse{
		ID:          i.ID,
		ListID:      i.ListID,
		Title:       i.Title,
		Description: i.Description,
		Status:      i.Status.String(),
		CreatedAt:   formatTime(i.CreatedAt),
		UpdatedAt:   formatTime(i.UpdatedAt),
	}
	if i.DueAt != nil {
		due := formatTime(*i.DueAt)
		resp.DueAt = &due
	}
	return resp
}

// ToItemResponses converts items to response DTOs; never nil.
func ToItemResponses(items []todoitem.TodoItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = ToItemResponse(&items[i])
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
