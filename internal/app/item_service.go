package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-api/internal/ports"
)

// Compile-time check that ItemService implements ports.ItemService.
var _ ports.ItemService = (*ItemService)(nil)

// ItemService implements ports.ItemService on top of an ItemStore. Every
// lookup is scoped by list ID and item ID together. Parent list existence is
// checked by the caller.
type ItemService struct {
	store  ports.ItemStore
	logger *slog.Logger
	now    func() time.Time
}

// NewItemService creates an ItemService. A nil logger discards output.
func NewItemService(store ports.ItemStore, logger *slog.Logger) *ItemService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ItemService{
		store:  store,
		logger: logger,
		now:    utcNow,
	}
}

// ListItems returns the items of a list.
func (s *ItemService) ListItems(ctx context.Context, listID int64) ([]todoitem.TodoItem, error) {
	s.logger.InfoContext(ctx, "listing todo items", slog.Int64("list_id", listID))

	items, err := s.store.AllForList(ctx, listID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todo items",
			slog.String("operation", "ListItems"),
			slog.Int64("list_id", listID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing todo items: %w", err)
	}

	return items, nil
}

// GetItem returns the item identified by both IDs.
func (s *ItemService) GetItem(ctx context.Context, listID, itemID int64) (todoitem.TodoItem, bool, error) {
	s.logger.InfoContext(ctx, "fetching todo item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID),
	)

	item, found, err := s.store.Find(ctx, listID, itemID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo item",
			slog.String("operation", "GetItem"),
			slog.Int64("list_id", listID),
			slog.Int64("item_id", itemID),
			slog.Any("error", err),
		)
		return todoitem.TodoItem{}, false, fmt.Errorf("fetching todo item: %w", err)
	}

	return item, found, nil
}

// CreateItem persists a new item under listID. The status always starts as
// NOT_COMPLETED.
func (s *ItemService) CreateItem(ctx context.Context, listID int64, draft todoitem.Draft) (todoitem.TodoItem, error) {
	s.logger.InfoContext(ctx, "creating todo item",
		slog.Int64("list_id", listID),
		slog.String("title", draft.Title),
	)

	item := draft.New(listID, s.now())
	if err := item.Validate(); err != nil {
		return todoitem.TodoItem{}, err
	}

	created, err := s.store.Insert(ctx, item)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo item",
			slog.String("operation", "CreateItem"),
			slog.Int64("list_id", listID),
			slog.Any("error", err),
		)
		return todoitem.TodoItem{}, fmt.Errorf("creating todo item: %w", err)
	}

	return created, nil
}

// UpdateItem applies a partial update. A supplied complete flag sets the
// status; an absent one leaves it untouched.
func (s *ItemService) UpdateItem(ctx context.Context, listID, itemID int64, patch todoitem.Patch) (
	todoitem.TodoItem, bool, error,
) {
	s.logger.InfoContext(ctx, "updating todo item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID),
	)

	if err := patch.Validate(); err != nil {
		return todoitem.TodoItem{}, false, err
	}

	updated, found, err := s.store.Update(ctx, listID, itemID, patch.Changes(s.now()))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo item",
			slog.String("operation", "UpdateItem"),
			slog.Int64("list_id", listID),
			slog.Int64("item_id", itemID),
			slog.Any("error", err),
		)
		return todoitem.TodoItem{}, false, fmt.Errorf("updating todo item: %w", err)
	}
	if !found {
		s.logger.WarnContext(ctx, "todo item to update does not exist",
			slog.Int64("list_id", listID),
			slog.Int64("item_id", itemID),
		)
	}

	return updated, found, nil
}

// DeleteItem removes the item identified by both IDs.
func (s *ItemService) DeleteItem(ctx context.Context, listID, itemID int64) (bool, error) {
	s.logger.InfoContext(ctx, "deleting todo item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID),
	)

	deleted, err := s.store.Delete(ctx, listID, itemID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo item",
			slog.String("operation", "DeleteItem"),
			slog.Int64("list_id", listID),
			slog.Int64("item_id", itemID),
			slog.Any("error", err),
		)
		return false, fmt.Errorf("deleting todo item: %w", err)
	}

	return deleted, nil
}
