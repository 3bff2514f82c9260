package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jeonck/tutoria/internal/entities"
)

// TrashController handles the soft-delete holding area endpoints.
type TrashController struct {
	store TrashStore
}

func NewTrashController(store TrashStore) *TrashController {
	return &TrashController{store: store}
}

// List returns all trash items, newest deletion first.
func (t *TrashController) List(c *gin.Context) {
	items, err := t.store.List()
	if respondDegraded(c, err, "list trash", []entities.TrashItem{}) {
		return
	}
	if err != nil {
		respondInternalError(c, err, "list trash")
		return
	}
	if items == nil {
		items = []entities.TrashItem{}
	}
	c.JSON(200, items)
}

// Restore recreates the snapshotted entity and removes the trash item.
func (t *TrashController) Restore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	restored, err := t.store.Restore(id)
	if err != nil {
		respondInternalError(c, err, "restore trash item")
		return
	}
	if !restored {
		respondNotFound(c, "trash item")
		return
	}
	respondSuccess(c, "item restored")
}

// PermanentDelete removes a trash item for good.
func (t *TrashController) PermanentDelete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	removed, err := t.store.PermanentDelete(id)
	if err != nil {
		respondInternalError(c, err, "permanently delete trash item")
		return
	}
	if !removed {
		respondNotFound(c, "trash item")
		return
	}
	respondSuccess(c, "item permanently deleted")
}

// Empty removes every trash item. Calling it on empty trash succeeds.
func (t *TrashController) Empty(c *gin.Context) {
	dropped, err := t.store.Empty()
	if err != nil {
		respondInternalError(c, err, "empty trash")
		return
	}
	c.JSON(200, gin.H{"message": "trash emptied", "removed": dropped})
}
