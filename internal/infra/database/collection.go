package database

import "github.com/xavierca1/cirkidz-admin/internal/entity"

// Collection is an ordered list of records keyed by RecordID. Order is display
// order; new records go to the front. Collection is not safe for concurrent
// use on its own, DemoStore serialises access.
type Collection[T entity.Record] struct {
	items []T
}

func NewCollection[T entity.Record](items []T) *Collection[T] {
	c := &Collection[T]{}
	c.ReplaceAll(items)
	return c
}

// List returns a copy of the current records.
func (c *Collection[T]) List() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int { return len(c.items) }

func (c *Collection[T]) Get(id string) (T, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) ReplaceAll(items []T) {
	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Upsert replaces the record matching id with fn(record). A missing id is a
// no-op and reports false.
func (c *Collection[T]) Upsert(id string, fn func(T) T) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items[i] = fn(c.items[i])
	return true
}

// Remove drops the record matching id. A missing id is a no-op.
func (c *Collection[T]) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	return true
}

func (c *Collection[T]) InsertFront(item T) {
	c.items = append([]T{item}, c.items...)
}

func (c *Collection[T]) clone() *Collection[T] {
	return NewCollection(c.items)
}

func (c *Collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}
