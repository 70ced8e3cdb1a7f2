// Package store persists all Kambel content in SQLite and exposes typed
// accessors per content area. The schema is embedded and applied through a
// schema_migrations table on open.
package store
