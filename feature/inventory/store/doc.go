// Package store persists the product catalog.
//
// Every backend stores the catalog as a whole: Load returns it, Replace swaps it.
// The database backend uses one transaction, the storage backend one object put,
// and the memory backend one pointer swap under a mutex. Callers compute the new
// catalog first and only then call Replace, so a failed write leaves the old
// catalog untouched and the import can be retried.
package store
