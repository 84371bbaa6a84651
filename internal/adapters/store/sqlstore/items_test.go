package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain"
	"github.com/jsamuelsen11/todo-lists-api/internal/domain/todoitem"
)

func TestItemStore_InsertAndFindScopedByList(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)
	lists, items := st.Lists(), st.Items()
	ctx := context.Background()

	a := insertList(t, lists, "a", nil)
	b := insertList(t, lists, "b", nil)
	due := testNow.Add(48 * time.Hour)

	created, err := items.Insert(ctx, todoitem.Draft{
		Title:       "milk",
		Description: strPtr("2 litres"),
		DueAt:       &due,
	}.New(a.ID, testNow))
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if created.ID == 0 || created.ListID != a.ID {
		t.Fatalf("Insert() = %+v, want assigned ID under list %d", created, a.ID)
	}
	if created.Status != todoitem.StatusNotCompleted {
		t.Errorf("Status = %q, want %q", created.Status, todoitem.StatusNotCompleted)
	}
	if created.DueAt == nil || !created.DueAt.Equal(due) {
		t.Errorf("DueAt = %v, want %v", created.DueAt, due)
	}

	if _, found, err := items.Find(ctx, a.ID, created.ID); err != nil || !found {
		t.Errorf("Find(list a) = (_, %v, %v), want (_, true, nil)", found, err)
	}
	if _, found, err := items.Find(ctx, b.ID, created.ID); err != nil || found {
		t.Errorf("Find(list b) = (_, %v, %v), want (_, false, nil)", found, err)
	}
}

func TestItemStore_AllForList(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)
	lists, items := st.Lists(), st.Items()
	ctx := context.Background()

	a := insertList(t, lists, "a", nil)
	b := insertList(t, lists, "b", nil)
	for _, title := range []string{"one", "two"} {
		if _, err := items.Insert(ctx, todoitem.Draft{Title: title}.New(a.ID, testNow)); err != nil {
			t.Fatalf("Insert(%q) error = %v", title, err)
		}
	}
	if _, err := items.Insert(ctx, todoitem.Draft{Title: "other"}.New(b.ID, testNow)); err != nil {
		t.Fatalf("Insert(other) error = %v", err)
	}

	got, err := items.AllForList(ctx, a.ID)
	if err != nil {
		t.Fatalf("AllForList() error = %v", err)
	}
	if len(got) != 2 || got[0].Title != "one" || got[1].Title != "two" {
		t.Errorf("AllForList(a) = %+v, want [one two]", got)
	}

	none, err := items.AllForList(ctx, 404)
	if err != nil {
		t.Fatalf("AllForList(unknown) error = %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("AllForList(unknown) = %v, want empty non-nil slice", none)
	}
}

func TestItemStore_UpdateStatusAndFields(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)
	list := insertList(t, st.Lists(), "groceries", nil)
	items := st.Items()
	ctx := context.Background()

	created, err := items.Insert(ctx, todoitem.Draft{Title: "milk", Description: strPtr("whole")}.New(list.ID, testNow))
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	t1 := testNow.Add(time.Minute)
	done, found, err := items.Update(ctx, list.ID, created.ID,
		todoitem.Patch{Complete: domain.Some(true)}.Changes(t1))
	if err != nil || !found {
		t.Fatalf("Update(complete) = (_, %v, %v), want (_, true, nil)", found, err)
	}
	if done.Status != todoitem.StatusCompleted {
		t.Errorf("Status = %q, want %q", done.Status, todoitem.StatusCompleted)
	}
	if done.Title != "milk" || done.Description == nil || *done.Description != "whole" {
		t.Errorf("Update(complete) touched other fields: %+v", done)
	}
	if !done.UpdatedAt.Equal(t1) || !done.CreatedAt.Equal(testNow) {
		t.Errorf("timestamps = (%v, %v), want (%v, %v)", done.CreatedAt, done.UpdatedAt, testNow, t1)
	}

	t2 := t1.Add(time.Minute)
	due := t2.Add(24 * time.Hour)
	renamed, _, err := items.Update(ctx, list.ID, created.ID,
		todoitem.Patch{Title: domain.Some("oat milk"), DueAt: domain.Some(due)}.Changes(t2))
	if err != nil {
		t.Fatalf("Update(title) error = %v", err)
	}
	if renamed.Status != todoitem.StatusCompleted {
		t.Errorf("Status = %q, want unchanged %q", renamed.Status, todoitem.StatusCompleted)
	}
	if renamed.Title != "oat milk" || renamed.DueAt == nil || !renamed.DueAt.Equal(due) {
		t.Errorf("Update(title, due) = %+v", renamed)
	}

	undone, _, err := items.Update(ctx, list.ID, created.ID,
		todoitem.Patch{Complete: domain.Some(false)}.Changes(t2.Add(time.Minute)))
	if err != nil {
		t.Fatalf("Update(uncomplete) error = %v", err)
	}
	if undone.Status != todoitem.StatusNotCompleted {
		t.Errorf("Status = %q, want %q", undone.Status, todoitem.StatusNotCompleted)
	}
}

func TestItemStore_UpdateUnderWrongList(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)
	a := insertList(t, st.Lists(), "a", nil)
	b := insertList(t, st.Lists(), "b", nil)
	items := st.Items()
	ctx := context.Background()

	created, err := items.Insert(ctx, todoitem.Draft{Title: "milk"}.New(a.ID, testNow))
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	_, found, err := items.Update(ctx, b.ID, created.ID,
		todoitem.Patch{Title: domain.Some("hijacked")}.Changes(testNow.Add(time.Minute)))
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if found {
		t.Error("Update() under wrong list found = true, want false")
	}

	got, _, _ := items.Find(ctx, a.ID, created.ID)
	if got.Title != "milk" {
		t.Errorf("Title = %q, want untouched %q", got.Title, "milk")
	}
}

func TestItemStore_DeleteScopedByList(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)
	a := insertList(t, st.Lists(), "a", nil)
	b := insertList(t, st.Lists(), "b", nil)
	items := st.Items()
	ctx := context.Background()

	created, err := items.Insert(ctx, todoitem.Draft{Title: "milk"}.New(a.ID, testNow))
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if deleted, err := items.Delete(ctx, b.ID, created.ID); err != nil || deleted {
		t.Errorf("Delete(wrong list) = (%v, %v), want (false, nil)", deleted, err)
	}
	if deleted, err := items.Delete(ctx, a.ID, created.ID); err != nil || !deleted {
		t.Errorf("Delete() = (%v, %v), want (true, nil)", deleted, err)
	}
	if _, found, _ := items.Find(ctx, a.ID, created.ID); found {
		t.Error("item still found after Delete()")
	}
}
