// Package ctxval attaches a mutable value bag to a context so that deep callees
// can report values back to the code that created the context.
package ctxval

import (
	"context"
	"sync"
)

type ctxKey struct{}

type bag struct {
	mu     sync.RWMutex
	values map[any]any
}

// Wrap returns ctx carrying a value bag; an already wrapped ctx is returned as is.
func Wrap(ctx context.Context) context.Context {
	if _, ok := getBag(ctx); ok {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, &bag{values: make(map[any]any)})
}

// Set stores v under k. It is a no-op when ctx was never wrapped.
func Set[K comparable, V any](ctx context.Context, k K, v V) {
	b, ok := getBag(ctx)
	if !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[k] = v
}

func Get[K comparable, V any](ctx context.Context, k K) (V, bool) {
	b, ok := getBag(ctx)
	if !ok {
		return *new(V), false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.values[k].(V)
	return v, ok
}

// Update replaces the value under k with fn(current) atomically.
func Update[K comparable, V any](ctx context.Context, k K, fn func(V) V) {
	b, ok := getBag(ctx)
	if !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	cur, _ := b.values[k].(V)
	b.values[k] = fn(cur)
}

func getBag(ctx context.Context) (*bag, bool) {
	b, ok := ctx.Value(ctxKey{}).(*bag)
	return b, ok
}
