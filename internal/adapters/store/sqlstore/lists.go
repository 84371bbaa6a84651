package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todolist"
	"github.com/jsamuelsen11/todo-lists-api/internal/ports"
)

// Compile-time check that ListStore implements ports.ListStore.
var _ ports.ListStore = (*ListStore)(nil)

const listColumns = "id, title, description, created_at, updated_at"

// ListStore persists todo lists in the todo_lists table.
type ListStore struct {
	store *Store
}

// All returns every list ordered by ID.
func (s *ListStore) All(ctx context.Context) ([]todolist.TodoList, error) {
	var lists []todolist.TodoList

	err := s.store.do(ctx, "lists.all", func(ctx context.Context, q querier) error {
		rows, err := q.QueryContext(ctx, "SELECT "+listColumns+" FROM todo_lists ORDER BY id")
		if err != nil {
			return err
		}
		defer rows.Close()

		lists = make([]todolist.TodoList, 0)
		for rows.Next() {
			l, err := scanList(rows)
			if err != nil {
				return err
			}
			lists = append(lists, l)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// Find returns the list with the given ID.
func (s *ListStore) Find(ctx context.Context, id int64) (todolist.TodoList, bool, error) {
	var (
		list  todolist.TodoList
		found bool
	)

	err := s.store.do(ctx, "lists.find", func(ctx context.Context, q querier) error {
		var err error
		list, found, err = findList(ctx, q, id)
		return err
	})
	if err != nil {
		return todolist.TodoList{}, false, err
	}
	return list, found, nil
}

// Insert persists l and returns the stored row.
func (s *ListStore) Insert(ctx context.Context, l todolist.TodoList) (todolist.TodoList, error) {
	var created todolist.TodoList

	err := s.store.do(ctx, "lists.insert", func(ctx context.Context, q querier) error {
		res, err := q.ExecContext(ctx,
			"INSERT INTO todo_lists (title, description, created_at, updated_at) VALUES (?, ?, ?, ?)",
			l.Title, l.Description, l.CreatedAt, l.UpdatedAt,
		)
		if err != nil {
			return err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading inserted id: %w", err)
		}

		var found bool
		created, found, err = findList(ctx, q, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("inserted todo list %d not readable", id)
		}
		return nil
	})
	if err != nil {
		return todolist.TodoList{}, err
	}
	return created, nil
}

// Update writes the supplied columns and updated_at, then returns the
// stored row. found is false when no list has the given ID.
func (s *ListStore) Update(ctx context.Context, id int64, patch todolist.Patch, at time.Time) (
	todolist.TodoList, bool, error,
) {
	var (
		list  todolist.TodoList
		found bool
	)

	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if title, ok := patch.Title.Get(); ok {
		sets = append(sets, "title = ?")
		args = append(args, title)
	}
	if desc, ok := patch.Description.Get(); ok {
		sets = append(sets, "description = ?")
		args = append(args, desc)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, at, id)

	err := s.store.do(ctx, "lists.update", func(ctx context.Context, q querier) error {
		query := "UPDATE todo_lists SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return err
		}

		var err error
		list, found, err = findList(ctx, q, id)
		return err
	})
	if err != nil {
		return todolist.TodoList{}, false, err
	}
	return list, found, nil
}

// Delete removes the list and its items in one transaction.
func (s *ListStore) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool

	err := s.store.do(ctx, "lists.delete", func(ctx context.Context, q querier) error {
		return withTx(ctx, q, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, "DELETE FROM todo_items WHERE todo_list_id = ?", id); err != nil {
				return fmt.Errorf("deleting items of list %d: %w", id, err)
			}

			res, err := tx.ExecContext(ctx, "DELETE FROM todo_lists WHERE id = ?", id)
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
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func findList(ctx context.Context, q querier, id int64) (todolist.TodoList, bool, error) {
	row := q.QueryRowContext(ctx, "SELECT "+listColumns+" FROM todo_lists WHERE id = ?", id)

	l, err := scanList(row)
	if errors.Is(err, sql.ErrNoRows) {
		return todolist.TodoList{}, false, nil
	}
	if err != nil {
		return todolist.TodoList{}, false, err
	}
	return l, true, nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (todolist.TodoList, error) {
	var (
		l    todolist.TodoList
		desc sql.NullString
	)
	if err := row.Scan(&l.ID, &l.Title, &desc, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return todolist.TodoList{}, err
	}

	if desc.Valid {
		l.Description = &desc.String
	}
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return l, nil
}
