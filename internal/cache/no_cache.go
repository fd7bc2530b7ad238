package cache

import (
	"context"
	"time"
)

// noCacheStore never stores anything, so every lookup reaches the source.
type noCacheStore struct{}

func NewNoCacheStore() Store {
	return noCacheStore{}
}

func (noCacheStore) Get(context.Context, string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (noCacheStore) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (noCacheStore) Delete(context.Context, string) error {
	return nil
}

func (noCacheStore) Ping(context.Context) error {
	return nil
}
