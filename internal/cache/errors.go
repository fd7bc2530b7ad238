package cache

import "errors"

// ErrCacheMiss is returned by [Store.Get] when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")
