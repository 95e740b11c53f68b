// Package kv is the small key-value abstraction that replaces browser local storage
// for per-visitor state such as the workshops login.
package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	// Remove is a no-op for absent keys.
	Remove(ctx context.Context, key string) error
}

type prefixed struct {
	store  Store
	prefix string
}

// WithPrefix scopes every key of store under prefix + ":".
func WithPrefix(store Store, prefix string) Store {
	return &prefixed{store: store, prefix: prefix + ":"}
}

func (p *prefixed) Get(ctx context.Context, key string) (string, error) {
	return p.store.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key string, value string) error {
	return p.store.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Remove(ctx context.Context, key string) error {
	return p.store.Remove(ctx, p.prefix+key)
}
