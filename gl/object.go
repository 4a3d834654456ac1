// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "fmt"

// Object owns a driver object and deletes it on Release. There must be at
// most one Object for each name; nothing enforces that.
type Object[H Handle] struct {
	f Functions
	h H
}

// Own takes ownership of h.
func Own[H Handle](f Functions, h H) *Object[H] {
	return &Object[H]{f: f, h: h}
}

// Adopt takes ownership of h after checking that it names a live object.
func Adopt[H Handle](f Functions, h H) (*Object[H], error) {
	if h.IsZero() || !h.Is(f) {
		return nil, fmt.Errorf("adopt %v: %w", h, ErrInvalidName)
	}
	return Own(f, h), nil
}

// Handle returns the owned handle without giving up ownership.
func (o *Object[H]) Handle() H {
	return o.h
}

// Release deletes the owned object. Releasing an empty Object does
// nothing.
func (o *Object[H]) Release() {
	var zero H
	if !o.h.IsZero() {
		o.h.Delete(o.f)
	}
	o.h = zero
}

// Take gives up ownership and returns the handle. The object is not
// deleted.
func (o *Object[H]) Take() H {
	var zero H
	h := o.h
	o.h = zero
	return h
}

// Reset deletes the owned object and takes ownership of h.
func (o *Object[H]) Reset(h H) {
	if o.h == h {
		return
	}
	o.Release()
	o.h = h
}
