package kv

import "context"

// Repository is a string-keyed byte store. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Store is a Repository with an explicit read-modify-write boundary.
// Everything fn does through tx commits together or not at all, and no
// other writer can interleave between its reads and writes.
//
// fn must only use tx; calling back into the Store from inside fn may
// block until the transaction ends.
type Store interface {
	Repository
	Update(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error
}
