package http

import (
	"github.com/gin-gonic/gin"

	collectionsdb "github.com/jeonck/tutoria/internal/database/collections"
	"github.com/jeonck/tutoria/internal/entities"
)

// CollectionsController handles tech stack collection endpoints.
type CollectionsController struct {
	store CollectionStore
}

func NewCollectionsController(store CollectionStore) *CollectionsController {
	return &CollectionsController{store: store}
}

// List returns every collection.
func (cc *CollectionsController) List(c *gin.Context) {
	collections, err := cc.store.GetAll()
	if respondDegraded(c, err, "list collections", []entities.TechStackCollection{}) {
		return
	}
	if err != nil {
		respondInternalError(c, err, "list collections")
		return
	}
	if collections == nil {
		collections = []entities.TechStackCollection{}
	}
	c.JSON(200, collections)
}

// Get returns a single collection by id.
func (cc *CollectionsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	collection, err := cc.store.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "collection")
			return
		}
		respondInternalError(c, err, "get collection")
		return
	}
	c.JSON(200, collection)
}

// Tutorials resolves a collection's tutorial ids to live tutorials.
func (cc *CollectionsController) Tutorials(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := cc.store.GetTutorials(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "collection")
			return
		}
		respondInternalError(c, err, "collection tutorials")
		return
	}
	c.JSON(200, list)
}

// Stats returns aggregate counts over the stored collection estimates.
func (cc *CollectionsController) Stats(c *gin.Context) {
	stats, err := cc.store.GetStats()
	if respondDegraded(c, err, "collection stats", collectionsdb.Stats{}) {
		return
	}
	if err != nil {
		respondInternalError(c, err, "collection stats")
		return
	}
	c.JSON(200, stats)
}

// Create inserts a collection; the matcher assigns its tutorials.
func (cc *CollectionsController) Create(c *gin.Context) {
	var collection entities.TechStackCollection
	if err := c.ShouldBindJSON(&collection); err != nil {
		respondBadRequest(c, "invalid collection payload: "+err.Error())
		return
	}
	if collection.Name == "" {
		respondBadRequest(c, "name is required")
		return
	}

	collection.ID = 0
	if err := cc.store.Create(&collection); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	respondCreated(c, collection)
}

// Update applies a partial update from the JSON body.
func (cc *CollectionsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var update entities.CollectionUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBadRequest(c, "invalid update payload: "+err.Error())
		return
	}

	collection, err := cc.store.Update(id, update)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "collection")
			return
		}
		respondBadRequest(c, err.Error())
		return
	}
	c.JSON(200, collection)
}

// Rematch reruns the matcher for a collection against the current tutorials.
func (cc *CollectionsController) Rematch(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	collection, err := cc.store.Rematch(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "collection")
			return
		}
		respondInternalError(c, err, "rematch collection")
		return
	}
	c.JSON(200, collection)
}

// Delete moves a collection to trash.
func (cc *CollectionsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.store.Delete(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "collection")
			return
		}
		respondInternalError(c, err, "delete collection")
		return
	}
	respondSuccess(c, "collection moved to trash")
}
