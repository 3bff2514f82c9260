package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jeonck/tutoria/internal/database/sharedfiles"
)

// SharedFilesController handles the shared markdown file registry endpoints.
type SharedFilesController struct {
	store SharedFileStore
}

func NewSharedFilesController(store SharedFileStore) *SharedFilesController {
	return &SharedFilesController{store: store}
}

// List returns all active shared files, newest upload first.
func (s *SharedFilesController) List(c *gin.Context) {
	files, err := s.store.List()
	if respondDegraded(c, err, "list shared files", []sharedfiles.ListedFile{}) {
		return
	}
	if err != nil {
		respondInternalError(c, err, "list shared files")
		return
	}
	if files == nil {
		files = []sharedfiles.ListedFile{}
	}
	c.JSON(200, files)
}

// Download streams the file content and increments its download counter.
func (s *SharedFilesController) Download(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payload, err := s.store.GetDownload(id)
	if err != nil {
		respondInternalError(c, err, "download shared file")
		return
	}
	if payload == nil {
		respondNotFound(c, "shared file")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+payload.Filename+`"`)
	c.Data(200, "text/markdown; charset=utf-8", []byte(payload.Content))
}

// Deactivate hides a file from listings and downloads.
func (s *SharedFilesController) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hidden, err := s.store.Deactivate(id)
	if err != nil {
		respondInternalError(c, err, "deactivate shared file")
		return
	}
	if !hidden {
		respondNotFound(c, "shared file")
		return
	}
	respondSuccess(c, "shared file deactivated")
}
