// Package entries provides the persistence layer for diary entries.
//
// # Overview
//
// The package defines a Repository interface for creating, listing and
// deleting Entry models (see internal/models). SQLiteRepository persists
// data through a dbx.DBTX (either *sql.DB or *sql.Tx); MemoryRepository keeps
// entries in process memory and is meant for tests.
//
// # Ordering and filtering
//
// List returns entries newest first. Entries sharing a timestamp come back in
// reverse insertion order. A non-empty filter restricts the result to entries
// whose content contains it, ignoring ASCII case.
//
// Typical Usage
//
//	repo := entries.NewSQLiteRepository(db)
//	_ = repo.Create(ctx, entry)
//	all, _ := repo.List(ctx, "")
//	hits, _ := repo.List(ctx, "coffee")
//	_ = repo.DeleteByID(ctx, entry.ID)
package entries
