package http

import (
	"context"
	"time"

	"github.com/jeonck/tutoria/internal/database/collections"
	"github.com/jeonck/tutoria/internal/database/sharedfiles"
	"github.com/jeonck/tutoria/internal/database/tutorials"
	"github.com/jeonck/tutoria/internal/entities"
)

// This file consolidates the store interface definitions used by HTTP
// controllers. Each controller declares the narrow interface it needs; the
// repository packages provide the implementations.

// TutorialStore provides tutorial CRUD, filtered listing and stats.
type TutorialStore interface {
	Create(tutorial *entities.Tutorial) error
	Update(id uint, update entities.TutorialUpdate) (*entities.Tutorial, error)
	Delete(id uint) error
	GetByID(id uint) (*entities.Tutorial, error)
	GetAll() ([]entities.Tutorial, error)
	List(filter tutorials.ListFilter) (*tutorials.ListResult, error)
	GetStats() (*tutorials.Stats, error)
	GetCategories() ([]string, error)
}

// CollectionStore provides collection CRUD and matcher-driven assignment.
type CollectionStore interface {
	Create(collection *entities.TechStackCollection) error
	Update(id uint, update entities.CollectionUpdate) (*entities.TechStackCollection, error)
	Delete(id uint) error
	GetByID(id uint) (*entities.TechStackCollection, error)
	GetAll() ([]entities.TechStackCollection, error)
	GetTutorials(id uint) ([]entities.Tutorial, error)
	GetStats() (*collections.Stats, error)
	Rematch(id uint) (*entities.TechStackCollection, error)
}

// TrashStore provides the soft-delete holding area operations.
type TrashStore interface {
	List() ([]entities.TrashItem, error)
	Restore(trashID uint) (bool, error)
	PermanentDelete(trashID uint) (bool, error)
	Empty() (int64, error)
	PurgeOlderThan(retention time.Duration) (int64, error)
}

// SharedFileStore provides the shared markdown file registry operations.
type SharedFileStore interface {
	Register(filename, content string, tutorialID *uint, uploadedBy string) (uint, error)
	List() ([]sharedfiles.ListedFile, error)
	GetDownload(id uint) (*sharedfiles.Download, error)
	Deactivate(id uint) (bool, error)
}

// TutorialGenerator produces tutorial drafts from a topic prompt.
type TutorialGenerator interface {
	GenerateTutorial(ctx context.Context, topic string) (*entities.Tutorial, error)
}

// StoreHealth reports whether the underlying store is usable.
type StoreHealth interface {
	Available() bool
}

// RouterConfig carries all dependencies needed to build the router.
type RouterConfig struct {
	Tutorials   TutorialStore
	Collections CollectionStore
	Trash       TrashStore
	SharedFiles SharedFileStore
	Generator   TutorialGenerator // nil disables the generation endpoint
	Health      StoreHealth
	PageSize    int
	Version     string
}
