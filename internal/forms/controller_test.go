package forms

import (
	"context"
	"errors"
	"testing"
)

type draft struct {
	ID   string
	Name string
}

func TestSubmitCreatesNewDraft(t *testing.T) {
	var created []draft
	invalidated := 0

	c := New(draft{}, Hooks[draft]{
		Create: func(_ context.Context, d draft) error {
			created = append(created, d)
			return nil
		},
		Update: func(context.Context, draft) error {
			t.Fatal("update called for a fresh draft")
			return nil
		},
		Invalidate: func(context.Context) { invalidated++ },
	})

	c.Begin()
	c.Apply(func(d *draft) { d.Name = "Mamra Almonds" })

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(created) != 1 || created[0].Name != "Mamra Almonds" {
		t.Errorf("created = %+v", created)
	}
	if invalidated != 1 {
		t.Errorf("invalidate called %d times, want 1", invalidated)
	}
	if got := c.Draft(); got != (draft{}) {
		t.Errorf("draft after submit = %+v, want reset to template", got)
	}
	if c.Editing() {
		t.Error("editing should reset after submit")
	}
}

func TestSubmitUpdatesExistingEntity(t *testing.T) {
	var updated []draft

	c := New(draft{}, Hooks[draft]{
		Create: func(context.Context, draft) error {
			t.Fatal("create called while editing")
			return nil
		},
		Update: func(_ context.Context, d draft) error {
			updated = append(updated, d)
			return nil
		},
	})

	c.Edit(draft{ID: "c1", Name: "Nuts"})
	if !c.Editing() {
		t.Fatal("Edit should flag the draft as an update")
	}
	c.Apply(func(d *draft) { d.Name = "Premium Nuts" })

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(updated) != 1 || updated[0].ID != "c1" || updated[0].Name != "Premium Nuts" {
		t.Errorf("updated = %+v", updated)
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	submitErr := errors.New("upstream rejected")
	invalidated := 0

	c := New(draft{}, Hooks[draft]{
		Create:     func(context.Context, draft) error { return submitErr },
		Invalidate: func(context.Context) { invalidated++ },
	})

	c.Begin()
	c.Apply(func(d *draft) { d.Name = "Walnut Halves" })

	if err := c.Submit(context.Background()); !errors.Is(err, submitErr) {
		t.Fatalf("Submit err = %v, want %v", err, submitErr)
	}
	if got := c.Draft(); got.Name != "Walnut Halves" {
		t.Errorf("draft after failure = %+v, want kept for correction", got)
	}
	if invalidated != 0 {
		t.Errorf("invalidate called %d times on failure, want 0", invalidated)
	}
}

func TestSubmitRunsPrepareFirst(t *testing.T) {
	c := New(draft{}, Hooks[draft]{
		Prepare: func(_ context.Context, d *draft) error {
			d.ID = "uploaded"
			return nil
		},
		Create: func(_ context.Context, d draft) error {
			if d.ID != "uploaded" {
				t.Errorf("create saw draft %+v before prepare finished", d)
			}
			return nil
		},
	})

	c.Begin()
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

func TestSubmitPrepareFailureSkipsSubmit(t *testing.T) {
	prepErr := errors.New("image upload failed")

	c := New(draft{}, Hooks[draft]{
		Prepare: func(context.Context, *draft) error { return prepErr },
		Create: func(context.Context, draft) error {
			t.Fatal("create called after prepare failed")
			return nil
		},
	})

	c.Begin()
	if err := c.Submit(context.Background()); !errors.Is(err, prepErr) {
		t.Fatalf("Submit err = %v, want %v", err, prepErr)
	}
}
