// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todolist"
	"github.com/jsamuelsen11/todo-lists-api/internal/ports"
)

// Compile-time check that ListService implements ports.ListService.
var _ ports.ListService = (*ListService)(nil)

// ListService implements ports.ListService on top of a ListStore. It stamps
// timestamps, validates input and logs failures. Absence is reported to the
// caller as found == false and never as an error.
type ListService struct {
	store  ports.ListStore
	logger *slog.Logger
	now    func() time.Time
}

// NewListService creates a ListService. A nil logger discards output.
func NewListService(store ports.ListStore, logger *slog.Logger) *ListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ListService{
		store:  store,
		logger: logger,
		now:    utcNow,
	}
}

// utcNow returns the current time in UTC at the microsecond precision the
// store can round-trip.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// ListLists returns all lists in store order.
func (s *ListService) ListLists(ctx context.Context) ([]todolist.TodoList, error) {
	s.logger.InfoContext(ctx, "listing todo lists")

	lists, err := s.store.All(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todo lists",
			slog.String("operation", "ListLists"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing todo lists: %w", err)
	}

	return lists, nil
}

// GetList returns a single list by ID.
func (s *ListService) GetList(ctx context.Context, id int64) (todolist.TodoList, bool, error) {
	s.logger.InfoContext(ctx, "fetching todo list", slog.Int64("list_id", id))

	list, found, err := s.store.Find(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo list",
			slog.String("operation", "GetList"),
			slog.Int64("list_id", id),
			slog.Any("error", err),
		)
		return todolist.TodoList{}, false, fmt.Errorf("fetching todo list: %w", err)
	}

	return list, found, nil
}

// CreateList validates the draft and persists a new list whose created and
// updated timestamps are equal.
func (s *ListService) CreateList(ctx context.Context, draft todolist.Draft) (todolist.TodoList, error) {
	s.logger.InfoContext(ctx, "creating todo list", slog.String("title", draft.Title))

	if err := draft.Validate(); err != nil {
		return todolist.TodoList{}, err
	}

	created, err := s.store.Insert(ctx, draft.New(s.now()))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo list",
			slog.String("operation", "CreateList"),
			slog.Any("error", err),
		)
		return todolist.TodoList{}, fmt.Errorf("creating todo list: %w", err)
	}

	return created, nil
}

// UpdateList overwrites the supplied fields of an existing list.
func (s *ListService) UpdateList(ctx context.Context, id int64, patch todolist.Patch) (todolist.TodoList, bool, error) {
	s.logger.InfoContext(ctx, "updating todo list", slog.Int64("list_id", id))

	if err := patch.Validate(); err != nil {
		return todolist.TodoList{}, false, err
	}

	updated, found, err := s.store.Update(ctx, id, patch, s.now())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo list",
			slog.String("operation", "UpdateList"),
			slog.Int64("list_id", id),
			slog.Any("error", err),
		)
		return todolist.TodoList{}, false, fmt.Errorf("updating todo list: %w", err)
	}
	if !found {
		s.logger.WarnContext(ctx, "todo list to update does not exist", slog.Int64("list_id", id))
	}

	return updated, found, nil
}

// DeleteList removes a list together with its items.
func (s *ListService) DeleteList(ctx context.Context, id int64) (bool, error) {
	s.logger.InfoContext(ctx, "deleting todo list", slog.Int64("list_id", id))

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo list",
			slog.String("operation", "DeleteList"),
			slog.Int64("list_id", id),
			slog.Any("error", err),
		)
		return false, fmt.Errorf("deleting todo list: %w", err)
	}

	return deleted, nil
}
