package todolist

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestDraft_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		draft     Draft
		wantField string
	}{
		{
			name:  "title only",
			draft: Draft{Title: "groceries"},
		},
		{
			name:  "title and description",
			draft: Draft{Title: "groceries", Description: strPtr("weekly shop")},
		},
		{
			name:  "title at max length",
			draft: Draft{Title: strings.Repeat("a", 100)},
		},
		{
			name:  "multibyte title counts characters",
			draft: Draft{Title: strings.Repeat("é", 100)},
		},
		{
			name:      "empty title",
			draft:     Draft{Title: ""},
			wantField: "title",
		},
		{
			name:      "title too long",
			draft:     Draft{Title: strings.Repeat("a", 101)},
			wantField: "title",
		},
		{
			name:      "empty description",
			draft:     Draft{Title: "groceries", Description: strPtr("")},
			wantField: "description",
		},
		{
			name:      "description too long",
			draft:     Draft{Title: "groceries", Description: strPtr(strings.Repeat("d", 201))},
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.draft.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestDraft_New(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := Draft{Title: "groceries", Description: strPtr("weekly")}.New(at)

	if l.ID != 0 {
		t.Errorf("ID = %d, want 0 before persistence", l.ID)
	}
	if l.Title != "groceries" {
		t.Errorf("Title = %q, want %q", l.Title, "groceries")
	}
	if l.Description == nil || *l.Description != "weekly" {
		t.Errorf("Description = %v, want %q", l.Description, "weekly")
	}
	if !l.CreatedAt.Equal(at) || !l.UpdatedAt.Equal(at) {
		t.Errorf("timestamps = (%v, %v), want both %v", l.CreatedAt, l.UpdatedAt, at)
	}
}

func TestPatch_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		patch     Patch
		wantField string
	}{
		{
			name:  "empty patch",
			patch: Patch{},
		},
		{
			name:  "title only",
			patch: Patch{Title: domain.Some("X")},
		},
		{
			name:      "empty title",
			patch:     Patch{Title: domain.Some("")},
			wantField: "title",
		},
		{
			name:      "description too long",
			patch:     Patch{Description: domain.Some(strings.Repeat("d", 201))},
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.patch.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}
