// Package history persists a ledger of generation runs in SQLite.
//
// Every written script records one row: the run ID, source transcript,
// output path, helper name, and package count. The ledger is informational
// only; generation never depends on it, and callers degrade to a nil store
// when the database cannot be opened.
//
// Schema changes bump the version in store.go; users delete the database to
// adopt the new schema.
package history
