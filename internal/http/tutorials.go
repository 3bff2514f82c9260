package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jeonck/tutoria/internal/database/tutorials"
	"github.com/jeonck/tutoria/internal/entities"
)

// TutorialsController handles tutorial CRUD and listing endpoints.
type TutorialsController struct {
	store    TutorialStore
	pageSize int
}

func NewTutorialsController(store TutorialStore, pageSize int) *TutorialsController {
	if pageSize < 1 {
		pageSize = 10
	}
	return &TutorialsController{store: store, pageSize: pageSize}
}

// List returns one page of tutorials. Query parameters: search, category,
// difficulty, favorites, completed, page, page_size.
func (t *TutorialsController) List(c *gin.Context) {
	filter := tutorials.ListFilter{
		Search:        c.Query("search"),
		Category:      c.Query("category"),
		Difficulty:    c.Query("difficulty"),
		FavoritesOnly: c.Query("favorites") == "true",
		CompletedOnly: c.Query("completed") == "true",
		Page:          1,
		PageSize:      t.pageSize,
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil && size > 0 {
		filter.PageSize = size
	}
	if filter.Difficulty != "" && !entities.ValidDifficulty(filter.Difficulty) {
		respondBadRequest(c, "invalid difficulty")
		return
	}

	result, err := t.store.List(filter)
	if respondDegraded(c, err, "list tutorials", tutorials.ListResult{Items: []entities.Tutorial{}}) {
		return
	}
	if err != nil {
		respondInternalError(c, err, "list tutorials")
		return
	}
	c.JSON(200, result)
}

// Get returns a single tutorial by id.
func (t *TutorialsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tutorial, err := t.store.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "tutorial")
			return
		}
		respondInternalError(c, err, "get tutorial")
		return
	}
	c.JSON(200, tutorial)
}

// Create inserts a tutorial from the JSON body.
func (t *TutorialsController) Create(c *gin.Context) {
	var tutorial entities.Tutorial
	if err := c.ShouldBindJSON(&tutorial); err != nil {
		respondBadRequest(c, "invalid tutorial payload: "+err.Error())
		return
	}
	if tutorial.Title == "" {
		respondBadRequest(c, "title is required")
		return
	}

	tutorial.ID = 0
	if err := t.store.Create(&tutorial); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	respondCreated(c, tutorial)
}

// Update applies a partial update from the JSON body.
func (t *TutorialsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var update entities.TutorialUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBadRequest(c, "invalid update payload: "+err.Error())
		return
	}

	tutorial, err := t.store.Update(id, update)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "tutorial")
			return
		}
		respondBadRequest(c, err.Error())
		return
	}
	c.JSON(200, tutorial)
}

// Delete moves a tutorial to trash.
func (t *TutorialsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := t.store.Delete(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "tutorial")
			return
		}
		respondInternalError(c, err, "delete tutorial")
		return
	}
	respondSuccess(c, "tutorial moved to trash")
}

// Stats returns aggregate tutorial counts.
func (t *TutorialsController) Stats(c *gin.Context) {
	stats, err := t.store.GetStats()
	if respondDegraded(c, err, "tutorial stats", tutorials.Stats{}) {
		return
	}
	if err != nil {
		respondInternalError(c, err, "tutorial stats")
		return
	}
	c.JSON(200, stats)
}

// Categories returns the distinct tutorial categories.
func (t *TutorialsController) Categories(c *gin.Context) {
	categories, err := t.store.GetCategories()
	if respondDegraded(c, err, "tutorial categories", []string{}) {
		return
	}
	if err != nil {
		respondInternalError(c, err, "tutorial categories")
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(200, categories)
}
