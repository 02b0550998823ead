package object

import (
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
)

// List is the shared, mutable set of placed objects. It preserves insertion
// order (the rendering layer draws in that order) and enforces id uniqueness
// for the lifetime of the session.
//
// The list is not safe for concurrent mutation; the orchestrator is the only
// writer. After any mutating call returns, the list reflects the new state
// and is safe to re-read.
type List struct {
	objects []*Object
	byID    map[string]*Object
}

// NewList creates an empty object list.
func NewList() *List {
	return &List{byID: make(map[string]*Object)}
}

// Add appends an object to the list. A duplicate id is an invariant violation
// and leaves the list unchanged.
func (l *List) Add(o *Object) error {
	if err := errors.ValidateObjectID(o.ID); err != nil {
		return err
	}
	if _, exists := l.byID[o.ID]; exists {
		return errors.New(errors.ErrCodeDuplicateID, "object id %q already placed", o.ID)
	}
	l.objects = append(l.objects, o)
	l.byID[o.ID] = o
	return nil
}

// Get returns the object with the given id.
func (l *List) Get(id string) (*Object, error) {
	o, ok := l.byID[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeObjectNotFound, "no object with id %q", id)
	}
	return o, nil
}

// Remove deletes the object with the given id.
func (l *List) Remove(id string) error {
	if _, ok := l.byID[id]; !ok {
		return errors.New(errors.ErrCodeObjectNotFound, "no object with id %q", id)
	}
	delete(l.byID, id)
	for i, o := range l.objects {
		if o.ID == id {
			l.objects = append(l.objects[:i], l.objects[i+1:]...)
			break
		}
	}
	return nil
}

// SetPosition moves an object to pos. This is the single write path the drag
// engine uses; the rendering layer picks the change up on its next read.
func (l *List) SetPosition(id string, pos geometry.Point) error {
	o, ok := l.byID[id]
	if !ok {
		return errors.New(errors.ErrCodeObjectNotFound, "no object with id %q", id)
	}
	o.Position = pos
	return nil
}

// All returns the placed objects in insertion order. The returned slice is a
// copy; the objects themselves are shared.
func (l *List) All() []*Object {
	out := make([]*Object, len(l.objects))
	copy(out, l.objects)
	return out
}

// Others returns every object except the one with the given id, for overlap
// checks where the candidate must not be compared against itself.
func (l *List) Others(id string) []*Object {
	out := make([]*Object, 0, len(l.objects))
	for _, o := range l.objects {
		if o.ID != id {
			out = append(out, o)
		}
	}
	return out
}

// Len returns the number of placed objects.
func (l *List) Len() int { return len(l.objects) }
