// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database lives fully in memory and is persisted as a serialized SQLite
// snapshot after every mutation. The layer is organized into domain-specific
// sub-packages:
//
//	database/
//	├── store.go         # In-memory connection, snapshot persistence
//	├── schema.go        # Schema versioning, patching, seed rebuild
//	├── tutorials/       # Tutorial CRUD, filtered listing, stats
//	├── collections/     # Tech stack collections and matcher assignment
//	├── trash/           # Soft-delete holding area
//	└── sharedfiles/     # Shared markdown file registry
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Open the store and make sure the schema is current
//	store, err := database.Open("./data")
//	err = database.EnsureSchema(store)
//
//	// Create domain-specific repositories
//	tutorialsRepo := tutorials.NewRepository(store)
//	trashRepo := trash.NewRepository(store)
//
//	// Use repositories
//	tutorial, err := tutorialsRepo.GetByID(123)
//
// # Persistence Model
//
// Every repository mutation serializes the in-memory database and atomically
// rewrites the snapshot file. A failed persist is logged but does not roll
// back the in-memory change; the data is written again on the next mutation.
//
// A store that fails to initialize is marked unavailable. Repositories then
// return ErrStoreUnavailable and the HTTP layer degrades reads to empty
// payloads instead of failing.
package database
