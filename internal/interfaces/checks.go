package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/jeonck/tutoria/internal/ai"
	"github.com/jeonck/tutoria/internal/database"
	"github.com/jeonck/tutoria/internal/database/collections"
	"github.com/jeonck/tutoria/internal/database/sharedfiles"
	"github.com/jeonck/tutoria/internal/database/trash"
	"github.com/jeonck/tutoria/internal/database/tutorials"
	"github.com/jeonck/tutoria/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.TutorialStore = (*tutorials.Repository)(nil)
var _ http.CollectionStore = (*collections.Repository)(nil)
var _ http.TrashStore = (*trash.Repository)(nil)
var _ http.SharedFileStore = (*sharedfiles.Repository)(nil)

// =============================================================================
// External Services
// =============================================================================

var _ http.TutorialGenerator = (*ai.Client)(nil)

// =============================================================================
// Health Reporting
// =============================================================================

var _ http.StoreHealth = (*database.Store)(nil)
