package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/jeonck/tutoria/internal/markdown"
)

// maxUploadBytes caps uploaded markdown files at 2 MiB.
const maxUploadBytes = 2 << 20

// MarkdownController handles markdown file import and export endpoints.
type MarkdownController struct {
	store TutorialStore
}

func NewMarkdownController(store TutorialStore) *MarkdownController {
	return &MarkdownController{store: store}
}

// Import parses an uploaded markdown file into a tutorial and stores it.
// Form fields: file (required), shared ("true" registers the file for
// re-download), uploaded_by.
func (m *MarkdownController) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respondBadRequest(c, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondInternalError(c, err, "open uploaded file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		respondInternalError(c, err, "read uploaded file")
		return
	}
	if len(content) == 0 {
		respondBadRequest(c, "file is empty")
		return
	}

	tutorial := markdown.Parse(string(content), fileHeader.Filename)
	if c.PostForm("shared") == "true" {
		tutorial.IsSharedMarkdown = true
		tutorial.UploadedBy = c.PostForm("uploaded_by")
	}

	if err := m.store.Create(tutorial); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	respondCreated(c, tutorial)
}

// Export renders a tutorial as a downloadable markdown file. Imported
// tutorials return their original file content.
func (m *MarkdownController) Export(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tutorial, err := m.store.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "tutorial")
			return
		}
		respondInternalError(c, err, "export tutorial")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+markdown.Filename(tutorial)+`"`)
	c.Data(200, "text/markdown; charset=utf-8", []byte(markdown.Render(tutorial)))
}
