// Package forms implements the draft-entity pattern every editable resource
// follows: hold a local editable copy, submit it as a create or an update
// depending on how the draft was opened, and on success reset the draft and
// invalidate the owning collection. On failure the draft is kept so the admin
// can correct and retry.
package forms

import "context"

type Controller[T any] struct {
	template T
	draft    T
	editing  bool

	create     func(ctx context.Context, draft T) error
	update     func(ctx context.Context, draft T) error
	prepare    func(ctx context.Context, draft *T) error
	invalidate func(ctx context.Context)
}

type Hooks[T any] struct {
	Create func(ctx context.Context, draft T) error
	Update func(ctx context.Context, draft T) error
	// Prepare runs before submit, e.g. uploading an image and folding the
	// hosted URL into the draft.
	Prepare    func(ctx context.Context, draft *T) error
	Invalidate func(ctx context.Context)
}

func New[T any](template T, h Hooks[T]) *Controller[T] {
	return &Controller[T]{
		template:   template,
		draft:      template,
		create:     h.Create,
		update:     h.Update,
		prepare:    h.Prepare,
		invalidate: h.Invalidate,
	}
}

// Begin opens a fresh draft from the empty template.
func (c *Controller[T]) Begin() {
	c.draft = c.template
	c.editing = false
}

// Edit opens a draft as a copy of an existing entity; Submit will update
// rather than create.
func (c *Controller[T]) Edit(entity T) {
	c.draft = entity
	c.editing = true
}

// Apply mutates the draft in place (a controlled-input change).
func (c *Controller[T]) Apply(fn func(*T)) {
	fn(&c.draft)
}

func (c *Controller[T]) Draft() T { return c.draft }

func (c *Controller[T]) Editing() bool { return c.editing }

// Submit runs the prepare step, then create or update. Success resets the
// draft and invalidates the owning cache keys; failure leaves the draft
// untouched for correction.
func (c *Controller[T]) Submit(ctx context.Context) error {
	if c.prepare != nil {
		if err := c.prepare(ctx, &c.draft); err != nil {
			return err
		}
	}

	submit := c.create
	if c.editing {
		submit = c.update
	}
	if err := submit(ctx, c.draft); err != nil {
		return err
	}

	if c.invalidate != nil {
		c.invalidate(ctx)
	}
	c.draft = c.template
	c.editing = false
	return nil
}
