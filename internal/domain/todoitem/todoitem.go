// Package todoitem defines the todo item entity, its completion status and
// the rules for deriving a stored change set from a caller's patch.
package todoitem

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain"
)

// TodoItem is a task belonging to exactly one todo list.
type TodoItem struct {
	ID          int64
	ListID      int64
	Title       string
	Description *string
	DueAt       *time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the TodoItem entity.
func (i *TodoItem) Validate() error {
	fields := make(map[string]string)

	if i.ListID <= 0 {
		fields["list_id"] = fmt.Sprintf("must be positive, got %d", i.ListID)
	}
	if msg := domain.CheckTitle(i.Title); msg != "" {
		fields["title"] = msg
	}
	if i.Description != nil {
		if msg := domain.CheckDescription(*i.Description); msg != "" {
			fields["description"] = msg
		}
	}
	if !i.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", i.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Draft carries the caller-supplied fields of an item being created.
// It has no status: new items always start NOT_COMPLETED.
type Draft struct {
	Title       string
	Description *string
	DueAt       *time.Time
}

// New builds the item to persist under listID, stamping both timestamps with at.
func (d Draft) New(listID int64, at time.Time) TodoItem {
	return TodoItem{
		ListID:      listID,
		Title:       d.Title,
		Description: d.Description,
		DueAt:       d.DueAt,
		Status:      StatusNotCompleted,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}

// Patch is a partial update of an item as supplied by a caller.
type Patch struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
	DueAt       domain.Optional[time.Time]
	Complete    domain.Optional[bool]
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

// Changes is the column-level change set written by the store.
// Status is set only when the patch carried a complete flag.
type Changes struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
	DueAt       domain.Optional[time.Time]
	Status      domain.Optional[Status]
	UpdatedAt   time.Time
}

// Changes derives the stored change set, mapping Complete to a Status.
func (p Patch) Changes(at time.Time) Changes {
	c := Changes{
		Title:       p.Title,
		Description: p.Description,
		DueAt:       p.DueAt,
		UpdatedAt:   at,
	}
	if complete, ok := p.Complete.Get(); ok {
		c.Status = domain.Some(StatusFor(complete))
	}
	return c
}
