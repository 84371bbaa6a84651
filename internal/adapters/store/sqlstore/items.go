package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-api/internal/ports"
)

// Compile-time check that ItemStore implements ports.ItemStore.
var _ ports.ItemStore = (*ItemStore)(nil)

const itemColumns = "id, todo_list_id, title, description, due_at, status, created_at, updated_at"

// ItemStore persists todo items in the todo_items table. Every lookup is
// filtered on both the item ID and the owning list ID.
type ItemStore struct {
	store *Store
}

// AllForList returns the items of a list ordered by ID.
func (s *ItemStore) AllForList(ctx context.Context, listID int64) ([]todoitem.TodoItem, error) {
	var items []todoitem.TodoItem

	err := s.store.do(ctx, "items.all_for_list", func(ctx context.Context, q querier) error {
		rows, err := q.QueryContext(ctx,
			"SELECT "+itemColumns+" FROM todo_items WHERE todo_list_id = ? ORDER BY id", listID)
		if err != nil {
			return err
		}
		defer rows.Close()

		items = make([]todoitem.TodoItem, 0)
		for rows.Next() {
			i, err := scanItem(rows)
			if err != nil {
				return err
			}
			items = append(items, i)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Find returns the item matching both IDs.
func (s *ItemStore) Find(ctx context.Context, listID, itemID int64) (todoitem.TodoItem, bool, error) {
	var (
		item  todoitem.TodoItem
		found bool
	)

	err := s.store.do(ctx, "items.find", func(ctx context.Context, q querier) error {
		var err error
		item, found, err = findItem(ctx, q, listID, itemID)
		return err
	})
	if err != nil {
		return todoitem.TodoItem{}, false, err
	}
	return item, found, nil
}

// Insert persists i and returns the stored row.
func (s *ItemStore) Insert(ctx context.Context, i todoitem.TodoItem) (todoitem.TodoItem, error) {
	var created todoitem.TodoItem

	err := s.store.do(ctx, "items.insert", func(ctx context.Context, q querier) error {
		res, err := q.ExecContext(ctx,
			`INSERT INTO todo_items (todo_list_id, title, description, due_at, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i.ListID, i.Title, i.Description, i.DueAt, string(i.Status), i.CreatedAt, i.UpdatedAt,
		)
		if err != nil {
			return err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading inserted id: %w", err)
		}

		var found bool
		created, found, err = findItem(ctx, q, i.ListID, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("inserted todo item %d not readable", id)
		}
		return nil
	})
	if err != nil {
		return todoitem.TodoItem{}, err
	}
	return created, nil
}

// Update writes the columns set in changes and updated_at, then returns the
// stored row. found is false when no item with itemID belongs to listID.
func (s *ItemStore) Update(ctx context.Context, listID, itemID int64, changes todoitem.Changes) (
	todoitem.TodoItem, bool, error,
) {
	var (
		item  todoitem.TodoItem
		found bool
	)

	sets := make([]string, 0, 5)
	args := make([]any, 0, 7)
	if title, ok := changes.Title.Get(); ok {
		sets = append(sets, "title = ?")
		args = append(args, title)
	}
	if desc, ok := changes.Description.Get(); ok {
		sets = append(sets, "description = ?")
		args = append(args, desc)
	}
	if due, ok := changes.DueAt.Get(); ok {
		sets = append(sets, "due_at = ?")
		args = append(args, due)
	}
	if status, ok := changes.Status.Get(); ok {
		sets = append(sets, "status = ?")
		args = append(args, string(status))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, changes.UpdatedAt, itemID, listID)

	err := s.store.do(ctx, "items.update", func(ctx context.Context, q querier) error {
		query := "UPDATE todo_items SET " + strings.Join(sets, ", ") + " WHERE id = ? AND todo_list_id = ?"
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return err
		}

		var err error
		item, found, err = findItem(ctx, q, listID, itemID)
		return err
	})
	if err != nil {
		return todoitem.TodoItem{}, false, err
	}
	return item, found, nil
}

// Delete removes the item matching both IDs.
func (s *ItemStore) Delete(ctx context.Context, listID, itemID int64) (bool, error) {
	var deleted bool

	err := s.store.do(ctx, "items.delete", func(ctx context.Context, q querier) error {
		res, err := q.ExecContext(ctx, "DELETE FROM todo_items WHERE id = ? AND todo_list_id = ?", itemID, listID)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reading affected rows: %w", err)
		}
		deleted = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func findItem(ctx context.Context, q querier, listID, itemID int64) (todoitem.TodoItem, bool, error) {
	row := q.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM todo_items WHERE id = ? AND todo_list_id = ?", itemID, listID)

	i, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return todoitem.TodoItem{}, false, nil
	}
	if err != nil {
		return todoitem.TodoItem{}, false, err
	}
	return i, true, nil
}

func scanItem(row rowScanner) (todoitem.TodoItem, error) {
	var (
		i      todoitem.TodoItem
		desc   sql.NullString
		due    sql.NullTime
		status string
	)
	if err := row.Scan(&i.ID, &i.ListID, &i.Title, &desc, &due, &status, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return todoitem.TodoItem{}, err
	}

	if desc.Valid {
		i.Description = &desc.String
	}
	if due.Valid {
		t := due.Time.UTC()
		i.DueAt = &t
	}
	i.Status = todoitem.Status(status)
	i.CreatedAt = i.CreatedAt.UTC()
	i.UpdatedAt = i.UpdatedAt.UTC()
	return i, nil
}
