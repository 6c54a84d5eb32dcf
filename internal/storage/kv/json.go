package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON loads key and decodes it into T.
//
// A missing key and a value that does not decode both report found=false
// with a nil error: corrupt records read as absent and are overwritten by
// the next write. Only driver failures are returned as errors.
func GetJSON[T any](ctx context.Context, r Repository, key string) (value T, found bool, err error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return value, false, err
	}
	if raw == nil {
		return value, false, nil
	}

	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return value, false, nil
	}
	return decoded, true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, r Repository, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode kv[%s]: %w", key, err)
	}
	return r.Set(ctx, key, b)
}
