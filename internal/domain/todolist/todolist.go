// Package todolist defines the todo list entity and its create/patch inputs.
package todolist

import (
	"time"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain"
)

// TodoList is a named container of todo items.
type TodoList struct {
	ID          int64
	Title       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Draft carries the caller-supplied fields of a list being created.
type Draft struct {
	Title       string
	Description *string
}

// Validate checks business rules for a new list.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (d Draft) Validate() error {
	fields := make(map[string]string)

	if msg := domain.CheckTitle(d.Title); msg != "" {
		fields["title"] = msg
	}
	if d.Description != nil {
		if msg := domain.CheckDescription(*d.Description); msg != "" {
			fields["description"] = msg
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// New builds the list to persist from d, stamping both timestamps with at.
func (d Draft) New(at time.Time) TodoList {
	return TodoList{
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}

// Patch is a partial update of a list. Unset fields are left untouched;
// there is no way to clear Description once it is set.
type Patch struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
}

// Validate checks the supplied fields only.
func (p Patch) Validate() error {
	fields := make(map[string]string)

	if title, ok := p.Title.Get(); ok {
		if msg := domain.CheckTitle(title); msg != "" {
			fields["title"] = msg
		}
	}
	if desc, ok := p.Description.Get(); ok {
		if msg := domain.CheckDescription(desc); msg != "" {
			fields["description"] = msg
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
