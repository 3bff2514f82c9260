// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// The application uses several categories of interfaces:
//
// ## Data Access Interfaces
//
//   - TutorialStore: Tutorial CRUD, filtered listing, stats (internal/http/stores.go)
//   - CollectionStore: Collection CRUD and matcher-driven assignment (internal/http/stores.go)
//   - TrashStore: Soft-delete holding area operations (internal/http/stores.go)
//   - SharedFileStore: Shared markdown file registry (internal/http/stores.go)
//
// ## External Service Interfaces
//
//   - TutorialGenerator: Tutorial drafts from a topic prompt (internal/http/stores.go)
//
// ## Health Interfaces
//
//   - StoreHealth: Store availability reporting (internal/http/stores.go)
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., progress notes):
//
//  1. Create sub-package: internal/database/notes/
//
//  2. Define repository:
//
//     type Repository struct { store *database.Store }
//
//     func NewRepository(store *database.Store) *Repository
//
//  3. Implement interface methods. Guard each operation with
//     store.Available() and call store.Persist() after mutations.
//
//  4. Add compile-time check:
//
//     var _ NoteStore = (*Repository)(nil)
//
// # Adding a New Generation Provider
//
// To add a new source of generated tutorial drafts:
//
//  1. Implement TutorialGenerator in internal/ai/ (or a sibling package)
//
//     type OllamaClient struct {
//         baseURL string
//     }
//
//     func (c *OllamaClient) GenerateTutorial(ctx context.Context, topic string) (*entities.Tutorial, error)
//
//     var _ http.TutorialGenerator = (*OllamaClient)(nil)
//
//  2. Wire it into RouterConfig in entrypoint.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
