// Package users stores DevLearn accounts as one JSON array under the
// durable key "devlearn_users".
//
// Every mutation reads the whole collection, changes a copy and writes it
// back inside a single kv.Store.Update, so concurrent writers serialise
// instead of discarding each other's users.
package users
