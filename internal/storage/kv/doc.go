// Package kv is the local key-value persistence layer.
//
// # Overview
//
// Records are JSON blobs stored in a single SQLite table (`kv`) created by
// the embedded goose migrations. Two scopes are provided:
//
//   - durable (OpenDurable): a file on disk that survives restarts and may
//     be opened by several processes at once;
//   - session (OpenSession): a private in-memory database that disappears
//     with the process.
//
// # Transactions
//
// Repositories never write a collection they have not read inside the same
// Store.Update call. Durable transactions begin with BEGIN IMMEDIATE and
// wait up to a busy timeout for other writers, so concurrent
// read-modify-write cycles serialise instead of losing updates.
//
// # Decoding
//
// GetJSON treats undecodable values as absent. A corrupt collection reads
// as empty and heals on the next write.
//
// Typical Usage
//
//	store, _ := kv.OpenDurable(ctx, "devlearn.db")
//	defer store.Close()
//	err := store.Update(ctx, func(ctx context.Context, tx kv.Repository) error {
//	    users, _, err := kv.GetJSON[[]models.User](ctx, tx, "devlearn_users")
//	    if err != nil {
//	        return err
//	    }
//	    return kv.SetJSON(ctx, tx, "devlearn_users", append(users, u))
//	})
package kv
